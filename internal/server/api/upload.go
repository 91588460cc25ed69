// Загрузка пользовательских картинок для открыток
package api

import (
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/IvanChernomyrdin/go-hapi-greetings/internal/server/validation"
)

// UploadImage — POST /upload: приём картинки в публичную директорию.
//
// В исходном приложении файл линковался под оригинальным именем без
// каких-либо проверок — это был дефект. Здесь:
//   - размер формы ограничен MaxUploadBytes;
//   - имя файла срезается до базового (никаких ../);
//   - расширение обязано пройти правило картинки открытки.
//
// Успех — 302 -> /cards.
func (h *Handler) UploadImage(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.MaxUploadBytes)
	if err := r.ParseMultipartForm(h.MaxUploadBytes); err != nil {
		h.Views.RenderError(w, http.StatusBadRequest, "upload too large or malformed")
		return
	}
	defer func() {
		// подчищаем временные файлы multipart
		if r.MultipartForm != nil {
			_ = r.MultipartForm.RemoveAll()
		}
	}()

	file, header, err := r.FormFile("upload_image")
	if err != nil {
		h.Views.RenderError(w, http.StatusBadRequest, "upload_image file is required")
		return
	}
	defer file.Close()

	filename := filepath.Base(header.Filename)
	if filename == "." || filename == "/" || !validation.ValidCardImage(filename) {
		h.Views.RenderError(w, http.StatusBadRequest, "card image must be a jpg, bmp, png or gif file")
		return
	}

	if err := os.MkdirAll(h.ImagesDir, 0o755); err != nil {
		h.Log.Sugar().Errorw("create images dir failed", "error", err)
		h.Views.RenderError(w, http.StatusInternalServerError, "internal error")
		return
	}

	dst, err := os.Create(filepath.Join(h.ImagesDir, filename))
	if err != nil {
		h.Log.Sugar().Errorw("create image file failed", "file", filename, "error", err)
		h.Views.RenderError(w, http.StatusInternalServerError, "internal error")
		return
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		h.Log.Sugar().Errorw("write image file failed", "file", filename, "error", err)
		h.Views.RenderError(w, http.StatusInternalServerError, "internal error")
		return
	}

	http.Redirect(w, r, "/cards", http.StatusFound)
}
