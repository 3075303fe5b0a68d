package handlers

import (
	"net/http"
	"os"
	"path/filepath"

	"placement_backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// pages - статические страницы фронтенда, отдаются как есть
var pages = []string{
	"index", "login", "register", "dashboard", "profile",
	"job-drives", "schedules", "analytics", "documents", "interview-prep",
}

const notFoundPage = "<h1>404 Not Found: Page Missing</h1>"

type PageHandler struct {
	dir string
}

func NewPageHandler(dir string) *PageHandler {
	return &PageHandler{dir: dir}
}

func (h *PageHandler) RegisterRoutes(r *gin.Engine) {
	r.GET("/", h.servePage("index"))
	for _, page := range pages {
		r.GET("/"+page+".html", h.servePage(page))
	}
}

func (h *PageHandler) servePage(name string) gin.HandlerFunc {
	path := filepath.Join(h.dir, name+".html")
	return func(c *gin.Context) {
		content, err := os.ReadFile(path)
		if err != nil {
			logger.CtxWarn(c.Request.Context(), "Page not found", "page", name, "path", path)
			c.Data(http.StatusNotFound, "text/html; charset=utf-8", []byte(notFoundPage))
			return
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8", content)
	}
}
