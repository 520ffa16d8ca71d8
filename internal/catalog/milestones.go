package catalog

// Milestone is a fixed day-count threshold celebrated from the relationship
// start date. The catalog is static and ordered by ascending Days.
type Milestone struct {
	Days        int    `json:"days"`
	Label       string `json:"label"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

var milestones = []Milestone{
	{Days: 1, Label: "Ngày đầu tiên", Description: "Khởi đầu của câu chuyện tình yêu", Icon: "heart"},
	{Days: 7, Label: "1 Tuần", Description: "Một tuần bên nhau thật ngọt ngào", Icon: "calendar"},
	{Days: 14, Label: "2 Tuần", Description: "Tình yêu đang nảy nở từng ngày", Icon: "flower"},
	{Days: 30, Label: "1 Tháng", Description: "Tháng đầu tiên đáng nhớ", Icon: "moon"},
	{Days: 50, Label: "50 Ngày", Description: "Nửa trăm ngày yêu thương", Icon: "star"},
	{Days: 100, Label: "100 Ngày", Description: "Một trăm ngày hạnh phúc bên nhau", Icon: "trophy"},
	{Days: 150, Label: "150 Ngày", Description: "Tình yêu ngày càng sâu đậm", Icon: "flame"},
	{Days: 200, Label: "200 Ngày", Description: "Hai trăm ngày không rời xa", Icon: "ribbon"},
	{Days: 300, Label: "300 Ngày", Description: "Ba trăm ngày trọn vẹn yêu thương", Icon: "gift"},
	{Days: 365, Label: "1 Năm", Description: "Kỷ niệm một năm yêu nhau", Icon: "heart-circle"},
	{Days: 500, Label: "500 Ngày", Description: "Năm trăm ngày đong đầy kỷ niệm", Icon: "diamond"},
	{Days: 730, Label: "2 Năm", Description: "Hai năm bên nhau, tình yêu vẫn nồng nàn", Icon: "hearts"},
	{Days: 1000, Label: "1000 Ngày", Description: "Một nghìn ngày yêu em", Icon: "sparkles"},
	{Days: 1095, Label: "3 Năm", Description: "Ba năm gắn bó, không gì lay chuyển", Icon: "shield-checkmark"},
	{Days: 1460, Label: "4 Năm", Description: "Bốn năm cùng nhau viết nên câu chuyện đẹp", Icon: "book"},
	{Days: 1825, Label: "5 Năm", Description: "Nửa thập kỷ yêu thương trọn vẹn", Icon: "medal"},
	{Days: 2000, Label: "2000 Ngày", Description: "Hai nghìn ngày không thể thiếu nhau", Icon: "infinite"},
	{Days: 2555, Label: "7 Năm", Description: "Bảy năm vượt qua mọi thử thách", Icon: "rose"},
	{Days: 3650, Label: "10 Năm", Description: "Một thập kỷ tình yêu bền vững", Icon: "earth"},
	{Days: 5475, Label: "15 Năm", Description: "Mười lăm năm, tình yêu như rượu vang", Icon: "wine"},
	{Days: 7300, Label: "20 Năm", Description: "Hai mươi năm son sắt thủy chung", Icon: "home"},
}

// Milestones returns the catalog in ascending threshold order. Callers must
// not mutate the returned slice.
func Milestones() []Milestone {
	return milestones
}
