package handler

import (
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/image/draw"
)

// maxPhotoWidth bounds stored photos; phone camera uploads are far larger
// than any screen here needs.
const maxPhotoWidth = 1280

// UploadPhoto 处理回忆照片上传：解码、按需缩放、存储并返回 photoUri
func (a *API) UploadPhoto(c *gin.Context) {
	file, err := c.FormFile("photo")
	if err != nil {
		respondError(c, http.StatusBadRequest, "no photo uploaded")
		return
	}

	contentType := file.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		respondError(c, http.StatusBadRequest, "only image uploads are allowed")
		return
	}

	src, err := file.Open()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Server error")
		return
	}
	defer src.Close()

	img, _, err := image.Decode(src)
	if err != nil {
		respondError(c, http.StatusBadRequest, "unsupported image format")
		return
	}

	img = scaleDown(img, maxPhotoWidth)

	if err := os.MkdirAll(a.uploadDir, 0o755); err != nil {
		respondError(c, http.StatusInternalServerError, "Server error")
		return
	}

	filename := fmt.Sprintf("%s-%s.jpg", time.Now().Format("20060102"), uuid.NewString())
	out, err := os.Create(filepath.Join(a.uploadDir, filename))
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Server error")
		return
	}
	defer out.Close()

	if err := jpeg.Encode(out, img, &jpeg.Options{Quality: 85}); err != nil {
		respondError(c, http.StatusInternalServerError, "Server error")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"photoUri": path.Join(a.uploadURL, filename),
	})
}

// scaleDown resizes img to maxWidth preserving aspect ratio. Images already
// within bounds pass through untouched.
func scaleDown(img image.Image, maxWidth int) image.Image {
	bounds := img.Bounds()
	if bounds.Dx() <= maxWidth {
		return img
	}

	height := bounds.Dy() * maxWidth / bounds.Dx()
	dst := image.NewRGBA(image.Rect(0, 0, maxWidth, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
	return dst
}
