package controllers

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/printfarmlabs/stockpile/app/services"
	"github.com/printfarmlabs/stockpile/pkg/bind"
	"github.com/printfarmlabs/stockpile/pkg/response"
	"github.com/printfarmlabs/stockpile/pkg/router"
	"github.com/printfarmlabs/stockpile/pkg/storage"
	"github.com/printfarmlabs/stockpile/pkg/validate"
)

const maxImageBytes = 8 << 20

type CatalogController struct {
	catalog *services.CatalogService
}

func NewCatalogController(catalog *services.CatalogService) *CatalogController {
	return &CatalogController{catalog: catalog}
}

func (c *CatalogController) Index(w http.ResponseWriter, r *http.Request) {
	skus, err := c.catalog.List()
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	response.Success(w, skus)
}

func (c *CatalogController) Store(w http.ResponseWriter, r *http.Request) {
	in, ok := c.bindInput(w, r)
	if !ok {
		return
	}

	sku, err := c.catalog.Create(in)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	response.Created(w, sku)
}

func (c *CatalogController) Show(w http.ResponseWriter, r *http.Request) {
	id, ok := c.idParam(w, r)
	if !ok {
		return
	}

	sku, err := c.catalog.Get(id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	response.Success(w, sku)
}

func (c *CatalogController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := c.idParam(w, r)
	if !ok {
		return
	}
	in, ok := c.bindInput(w, r)
	if !ok {
		return
	}

	sku, err := c.catalog.Update(id, in)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	response.Success(w, sku)
}

func (c *CatalogController) Destroy(w http.ResponseWriter, r *http.Request) {
	id, ok := c.idParam(w, r)
	if !ok {
		return
	}

	if err := c.catalog.Delete(id); err != nil {
		writeServiceError(w, r, err)
		return
	}
	response.NoContent(w)
}

// UploadImage accepts a multipart "image" part, writes it to the configured
// disk and records the path on the catalog entry.
func (c *CatalogController) UploadImage(w http.ResponseWriter, r *http.Request) {
	id, ok := c.idParam(w, r)
	if !ok {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxImageBytes)
	file, header, err := r.FormFile("image")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "missing image file")
		return
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	switch ext {
	case ".png", ".jpg", ".jpeg", ".webp":
	default:
		response.Error(w, http.StatusUnsupportedMediaType, "image must be png, jpg or webp")
		return
	}

	path := fmt.Sprintf("images/sku-%d%s", id, ext)
	if err := storage.PutStream(path, file); err != nil {
		writeServiceError(w, r, err)
		return
	}

	sku, err := c.catalog.SetImagePath(id, path)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	response.Success(w, map[string]interface{}{
		"sku": sku,
		"url": storage.URL(path),
	})
}

func (c *CatalogController) idParam(w http.ResponseWriter, r *http.Request) (uint, bool) {
	raw := router.Param(r, "id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		response.Error(w, http.StatusBadRequest, "invalid sku id")
		return 0, false
	}
	return uint(id), true
}

func (c *CatalogController) bindInput(w http.ResponseWriter, r *http.Request) (services.SKUInput, bool) {
	var in services.SKUInput
	errs, err := bind.JSON(r, &in)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "invalid JSON body")
		return in, false
	}
	if validate.HasErrors(errs) {
		response.ValidationError(w, errs)
		return in, false
	}
	return in, true
}
