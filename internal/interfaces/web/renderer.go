package web

import (
	"fmt"
	"net/http"

	"github.com/flosch/pongo2/v6"
	"github.com/gin-gonic/gin"

	"helpdesk/internal/shared/logger"
)

// Renderer renders pongo2 templates loaded from the configured directory.
type Renderer struct {
	set    *pongo2.TemplateSet
	logger logger.Interface
}

func NewRenderer(templatesDir string, log logger.Interface) (*Renderer, error) {
	loader, err := pongo2.NewLocalFileSystemLoader(templatesDir)
	if err != nil {
		return nil, fmt.Errorf("failed to create template loader for %s: %w", templatesDir, err)
	}

	return &Renderer{
		set:    pongo2.NewSet("helpdesk", loader),
		logger: log,
	}, nil
}

// TemplateSet exposes the underlying set, mainly for tests.
func (r *Renderer) TemplateSet() *pongo2.TemplateSet {
	return r.set
}

// HTML renders the named template into the response.
func (r *Renderer) HTML(c *gin.Context, status int, name string, ctx pongo2.Context) {
	tpl, err := r.set.FromCache(name)
	if err != nil {
		r.logger.Errorw("failed to load template", "template", name, "error", err)
		c.String(http.StatusInternalServerError, "template error")
		return
	}

	out, err := tpl.Execute(ctx)
	if err != nil {
		r.logger.Errorw("failed to render template", "template", name, "error", err)
		c.String(http.StatusInternalServerError, "template error")
		return
	}

	c.Data(status, "text/html; charset=utf-8", []byte(out))
}
