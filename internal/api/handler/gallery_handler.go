package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/anything2image/gallery-api/internal/core/domain"
	"github.com/anything2image/gallery-api/internal/core/ports"
)

// GalleryHandler handles artwork routes under /user.
type GalleryHandler struct {
	service ports.GalleryService
}

func NewGalleryHandler(service ports.GalleryService) *GalleryHandler {
	return &GalleryHandler{service: service}
}

type saveArtworkRequest struct {
	ArtName          string `json:"art_name" validate:"required"`
	Description      string `json:"description" validate:"required"`
	Prompt           string `json:"prompt" validate:"required"`
	Animal           string `json:"animal" validate:"required"`
	OriginalImageURL string `json:"original_image_url" validate:"required"`
	MaskedImageURL   string `json:"masked_image_url" validate:"required"`
	FinalImageURL    string `json:"final_image_url" validate:"required"`
}

type saveArtworkResponse struct {
	Message string          `json:"message"`
	Artwork *domain.Artwork `json:"artwork"`
}

type listGalleryResponse struct {
	Gallery []domain.Artwork `json:"gallery"`
}

// Save creates a gallery entry owned by the authenticated user.
//
// @Summary      Save an artwork
// @Tags         gallery
// @Accept       json
// @Produce      json
// @Param        body  body      saveArtworkRequest  true  "Artwork fields"
// @Success      201   {object}  saveArtworkResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /user/save [post]
func (h *GalleryHandler) Save(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req saveArtworkRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	art, err := h.service.Create(c.Request().Context(), user.ID, ports.CreateArtworkInput{
		ArtName:          req.ArtName,
		Description:      req.Description,
		Prompt:           req.Prompt,
		Animal:           req.Animal,
		OriginalImageURL: req.OriginalImageURL,
		MaskedImageURL:   req.MaskedImageURL,
		FinalImageURL:    req.FinalImageURL,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, saveArtworkResponse{
		Message: "Artwork saved successfully.",
		Artwork: art,
	})
}

// List returns the gallery of the requested user. The requested id must
// match the authenticated identity.
//
// @Summary      List a user's gallery
// @Tags         gallery
// @Produce      json
// @Param        user_id  path  string  true  "User id"
// @Success      200  {object}  listGalleryResponse
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /user/gallery/{user_id} [get]
func (h *GalleryHandler) List(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	artworks, err := h.service.ListByUser(c.Request().Context(), user.ID, c.Param("user_id"))
	if err != nil {
		return err
	}

	if artworks == nil {
		artworks = []domain.Artwork{}
	}
	return c.JSON(http.StatusOK, listGalleryResponse{Gallery: artworks})
}
