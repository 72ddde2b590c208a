package server

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pondside/docbrief/core"
	"github.com/pondside/docbrief/ingestion"
	"github.com/pondside/docbrief/storage"
)

// uploadResponse is the body returned by a successful upload.
type uploadResponse struct {
	Id     core.ID     `json:"id"`
	Status core.Status `json:"status"`
}

// handleUpload accepts a multipart document upload and returns the
// assigned ID immediately. Enrichment happens in the background; poll
// the document endpoint for its status.
func (s *Server) handleUpload(c echo.Context) error {
	file, err := c.FormFile("file")
	if err != nil {
		return NewBadRequestError("no file provided", err)
	}

	src, err := file.Open()
	if err != nil {
		return NewInternalError("failed to open uploaded file", err)
	}
	defer src.Close()

	content, err := io.ReadAll(src)
	if err != nil {
		return NewInternalError("failed to read uploaded file", err)
	}

	// Clients that don't know the type send octet-stream; treat that as
	// undeclared so the pipeline derives the type from the extension.
	mimeType := file.Header.Get(echo.HeaderContentType)
	if mimeType == "application/octet-stream" {
		mimeType = ""
	}
	id, err := s.pipeline.Accept(c.Request().Context(), file.Filename, mimeType, content)
	if err != nil {
		switch {
		case errors.Is(err, ingestion.ErrPayloadTooLarge):
			return NewPayloadTooLargeError(err.Error())
		case errors.Is(err, ingestion.ErrInvalidInput):
			return NewBadRequestError(err.Error(), nil)
		default:
			return NewInternalError("failed to accept document", err)
		}
	}

	return c.JSON(http.StatusCreated, uploadResponse{Id: id, Status: core.StatusPending})
}

// handleList returns headers for all stored documents.
func (s *Server) handleList(c echo.Context) error {
	headers, err := s.queries.List(c.Request().Context())
	if err != nil {
		return NewInternalError("failed to list documents", err)
	}
	return c.JSON(http.StatusOK, headers)
}

// handleGet returns the view of a single document. Transient documents
// answer 202 so pollers can tell "still working" from "done".
func (s *Server) handleGet(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	view, err := s.queries.Get(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return NewNotFoundError("document", c.Param("id"))
		}
		return NewInternalError("failed to load document", err)
	}

	status := http.StatusOK
	if !view.Status.Terminal() {
		status = http.StatusAccepted
	}
	return c.JSON(status, view)
}

// handleDownload serves the original uploaded payload.
func (s *Server) handleDownload(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	raw, err := s.queries.Raw(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return NewNotFoundError("document", c.Param("id"))
		}
		return NewInternalError("failed to load document", err)
	}

	mimeType := raw.MimeType
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}
	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf("attachment; filename=%q", raw.Filename))
	return c.Blob(http.StatusOK, mimeType, raw.Content)
}

// handleDelete removes a document.
func (s *Server) handleDelete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := s.pipeline.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return NewNotFoundError("document", c.Param("id"))
		}
		return NewInternalError("failed to delete document", err)
	}
	return c.NoContent(http.StatusNoContent)
}

// handleHealth is a liveness probe.
func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func parseID(c echo.Context) (core.ID, error) {
	raw := c.Param("id")
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, NewBadRequestError(fmt.Sprintf("invalid document id: %s", raw), nil)
	}
	return core.ID(id), nil
}
