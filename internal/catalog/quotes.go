package catalog

// quotes holds the quote-of-day catalog. Selection is keyed by day of year,
// so order matters and entries must not be reshuffled casually.
var quotes = []string{
	"Yêu em là điều anh không thể ngờ, nhưng là điều anh không bao giờ hối hận.",
	"Mỗi ngày bên em là một ngày đáng nhớ.",
	"Tình yêu không cần hoàn hảo, chỉ cần chân thành.",
	"Em là lý do anh mỉm cười mỗi sáng thức dậy.",
	"Được nắm tay em đi hết cuộc đời là điều tuyệt vời nhất.",
	"Yêu nhau không phải là nhìn nhau, mà là cùng nhìn về một hướng.",
	"Hạnh phúc đơn giản là có em bên cạnh.",
	"Khoảng cách không chia cắt được hai trái tim cùng nhịp đập.",
	"Anh không cần cả thế giới, anh chỉ cần em.",
	"Mỗi khoảnh khắc bên nhau đều là kỷ niệm đáng trân trọng.",
	"Tình yêu đẹp nhất là khi cả hai cùng cố gắng.",
	"Em là ngôi nhà mà trái tim anh luôn muốn trở về.",
	"Ngày hôm nay yêu em nhiều hơn hôm qua, ít hơn ngày mai.",
	"Cảm ơn em đã đến và ở lại trong cuộc đời anh.",
	"Yêu là cùng nhau già đi, cùng nhau trưởng thành.",
	"Một đời người, một người yêu, thế là đủ.",
	"Bên em, mọi ngày thường đều trở thành ngày đặc biệt.",
	"Tình yêu thật sự không phải tìm được người hoàn hảo, mà là học cách nhìn người không hoàn hảo một cách hoàn hảo.",
	"Chỉ cần em cười, thế giới của anh đã đủ bình yên.",
	"Những ngày yêu em là những ngày đẹp nhất đời anh.",
	"Yêu thương cho đi là yêu thương giữ được mãi mãi.",
}

// Quotes returns the ordered quote catalog. Callers must not mutate the
// returned slice.
func Quotes() []string {
	return quotes
}
