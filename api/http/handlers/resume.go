package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/resumefill/api/http/presenter"
	"github.com/artem13815/resumefill/pkg/resume"
)

type ResumeHandler struct {
	svc resume.ParseService
}

func NewResumeHandler(svc resume.ParseService) *ResumeHandler {
	return &ResumeHandler{svc: svc}
}

// Parse извлекает структурированные поля из загруженного резюме.
// @Summary Разбор резюме
// @Description Принимает PDF, DOCX или TXT, отправляет документ в модель и возвращает поля для формы.
// @Tags    Резюме
// @Accept  multipart/form-data
// @Produce json
// @Param   file formData file true "Файл резюме (PDF, DOCX или TXT)"
// @Security BearerAuth
// @Success 200 {object} resume.ResumeRecord
// @Failure 400 {object} presenter.ErrorResponse "Файл не передан или не прочитан"
// @Failure 415 {object} presenter.ErrorResponse "Неподдерживаемый тип файла"
// @Failure 502 {object} presenter.ErrorResponse "Модель не смогла разобрать документ"
// @Router  /resume/parse [post]
func (h *ResumeHandler) Parse(c *fiber.Ctx) error {
	u, closeFn, err := formUpload(c, h.svc.Check)
	defer closeFn()
	if err != nil {
		if errors.Is(err, errNoFile) {
			return presenter.Error(c, http.StatusBadRequest, err.Error())
		}
		return presenter.Fail(c, err)
	}
	rec, err := h.svc.Parse(requestContext(c), u)
	if err != nil {
		return presenter.Fail(c, err)
	}
	return presenter.JSON(c, http.StatusOK, rec)
}

// AllowedTypes lists accepted media types.
// @Summary Поддерживаемые типы файлов
// @Tags    Резюме
// @Produce json
// @Success 200 {object} map[string]any
// @Router  /resume/types [get]
func (h *ResumeHandler) AllowedTypes(c *fiber.Ctx) error {
	return presenter.JSON(c, http.StatusOK, fiber.Map{
		"mediaTypes": resume.AllowedMediaTypes(),
		"model":      h.svc.ModelName(),
	})
}
