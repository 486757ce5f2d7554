package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/artem13815/resumefill/api/http/presenter"
	"github.com/artem13815/resumefill/pkg/form"
	"github.com/artem13815/resumefill/pkg/resume"
)

// FormsHandler exposes form sessions: the editable, in-memory result of one upload.
type FormsHandler struct {
	store  *form.Store
	submit *form.Submitter
	check  func(mediaType string) error
}

func NewFormsHandler(store *form.Store, svc resume.ParseService, submit *form.Submitter) *FormsHandler {
	return &FormsHandler{store: store, submit: submit, check: svc.Check}
}

// Create открывает новую сессию формы.
// @Summary Создать сессию формы
// @Tags    Формы
// @Produce json
// @Security BearerAuth
// @Success 201 {object} form.State
// @Router  /forms [post]
func (h *FormsHandler) Create(c *fiber.Ctx) error {
	sess := h.store.Create()
	return presenter.JSON(c, http.StatusCreated, sess.Snapshot())
}

// Get возвращает текущее состояние формы.
// @Summary Состояние формы
// @Tags    Формы
// @Produce json
// @Param   id path string true "ID сессии"
// @Security BearerAuth
// @Success 200 {object} form.State
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /forms/{id} [get]
func (h *FormsHandler) Get(c *fiber.Ctx) error {
	sess, err := h.session(c)
	if err != nil {
		return presenter.Fail(c, err)
	}
	return presenter.JSON(c, http.StatusOK, sess.Snapshot())
}

// Upload загружает резюме в форму и заполняет её результатом модели.
// @Summary Загрузить резюме в форму
// @Description Одновременно может выполняться только один разбор на сессию. Ошибка разбора сохраняется в состоянии формы.
// @Tags    Формы
// @Accept  multipart/form-data
// @Produce json
// @Param   id   path     string true "ID сессии"
// @Param   file formData file   true "Файл резюме (PDF, DOCX или TXT)"
// @Security BearerAuth
// @Success 200 {object} form.State
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Failure 409 {object} presenter.ErrorResponse "Разбор уже выполняется"
// @Failure 415 {object} presenter.ErrorResponse
// @Router  /forms/{id}/upload [post]
func (h *FormsHandler) Upload(c *fiber.Ctx) error {
	sess, err := h.session(c)
	if err != nil {
		return presenter.Fail(c, err)
	}
	u, closeFn, err := formUpload(c, h.check)
	defer closeFn()
	if err != nil {
		if errors.Is(err, errNoFile) {
			return presenter.Error(c, http.StatusBadRequest, err.Error())
		}
		return presenter.Fail(c, err)
	}
	state, err := h.submit.Submit(requestContext(c), sess, u)
	if err != nil {
		return presenter.Fail(c, err)
	}
	return presenter.JSON(c, http.StatusOK, state)
}

// Update сохраняет правки пользователя.
// @Summary Редактировать поля формы
// @Tags    Формы
// @Accept  json
// @Produce json
// @Param   id   path string              true "ID сессии"
// @Param   body body resume.ResumeRecord true "Отредактированные поля"
// @Security BearerAuth
// @Success 200 {object} form.State
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Failure 409 {object} presenter.ErrorResponse
// @Router  /forms/{id} [put]
func (h *FormsHandler) Update(c *fiber.Ctx) error {
	sess, err := h.session(c)
	if err != nil {
		return presenter.Fail(c, err)
	}
	var rec resume.ResumeRecord
	if err := c.BodyParser(&rec); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid form data")
	}
	if err := sess.Update(rec); err != nil {
		return presenter.Fail(c, err)
	}
	return presenter.JSON(c, http.StatusOK, sess.Snapshot())
}

// Reset очищает форму; запоздавший результат разбора будет отброшен.
// @Summary Сбросить форму
// @Tags    Формы
// @Produce json
// @Param   id path string true "ID сессии"
// @Security BearerAuth
// @Success 200 {object} form.State
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /forms/{id}/reset [post]
func (h *FormsHandler) Reset(c *fiber.Ctx) error {
	sess, err := h.session(c)
	if err != nil {
		return presenter.Fail(c, err)
	}
	sess.Reset()
	return presenter.JSON(c, http.StatusOK, sess.Snapshot())
}

// Delete удаляет сессию формы.
// @Summary Удалить сессию формы
// @Tags    Формы
// @Param   id path string true "ID сессии"
// @Security BearerAuth
// @Success 204
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /forms/{id} [delete]
func (h *FormsHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Fail(c, form.ErrNotFound)
	}
	if err := h.store.Delete(id); err != nil {
		return presenter.Fail(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}

func (h *FormsHandler) session(c *fiber.Ctx) (*form.Session, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, form.ErrNotFound
	}
	return h.store.Get(id)
}
