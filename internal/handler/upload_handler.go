package handler

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// 缩略图最大宽度，超过时按比例缩小
const thumbnailWidth = 480

// Upload 处理图片上传请求。
// 文件内容必须能被解码为图片，仅 Content-Type 声明不作数。
func (a *API) Upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		// 兼容旧客户端的 image 字段名
		file, err = c.FormFile("image")
		if err != nil {
			respondError(c, http.StatusBadRequest, "No file uploaded")
			return
		}
	}

	contentType := file.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		respondError(c, http.StatusBadRequest, "Only image uploads are allowed")
		return
	}

	src, err := file.Open()
	if err != nil {
		respondInternal(c, "Failed to read uploaded file", err)
		return
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		respondInternal(c, "Failed to read uploaded file", err)
		return
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		respondError(c, http.StatusBadRequest, "Unsupported image format")
		return
	}

	if err := os.MkdirAll(a.uploadDir, 0o755); err != nil {
		respondInternal(c, "Failed to prepare upload directory", err)
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if ext == "" {
		ext = "." + format
	}
	base := fmt.Sprintf("%s-%s", time.Now().Format("20060102"), uuid.New().String())
	fileName := base + ext

	if err := os.WriteFile(filepath.Join(a.uploadDir, fileName), data, 0o644); err != nil {
		respondInternal(c, "Failed to save file", err)
		return
	}

	// 缩略图生成失败只降级，不影响主文件
	thumbName := fileName
	if thumb := scaleThumbnail(img); thumb != nil {
		candidate := base + "_thumb.jpg"
		if err := writeJPEG(filepath.Join(a.uploadDir, candidate), thumb); err != nil {
			log.Warn().Err(err).Str("file", fileName).Msg("failed to write thumbnail")
		} else {
			thumbName = candidate
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"imageUrl":     joinUploadURL(a.uploadURL, fileName),
		"thumbnailUrl": joinUploadURL(a.uploadURL, thumbName),
	})
}

// scaleThumbnail 宽度超限时等比缩小，足够小的图直接复用原图（返回 nil）
func scaleThumbnail(src image.Image) image.Image {
	bounds := src.Bounds()
	if bounds.Dx() <= thumbnailWidth {
		return nil
	}

	height := bounds.Dy() * thumbnailWidth / bounds.Dx()
	if height < 1 {
		height = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, thumbnailWidth, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)
	return dst
}

func writeJPEG(path string, img image.Image) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer out.Close()

	return jpeg.Encode(out, img, &jpeg.Options{Quality: 85})
}

func joinUploadURL(prefix, name string) string {
	return strings.TrimRight(prefix, "/") + "/" + name
}
