package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/nfrund/petimages/internal/middleware"
)

// RegisterRoutes sets up all the application routes.
func (s *Server) RegisterRoutes() {
	uploadLimits := []echo.MiddlewareFunc{
		middleware.RateLimiter(s.Cfg.UploadRateLimit),
	}
	if s.Cfg.MaxUploadBytes > 0 {
		// Leave room for the multipart envelope around the file itself.
		uploadLimits = append(uploadLimits, echomw.BodyLimitWithConfig(echomw.BodyLimitConfig{
			Limit: bodyLimit(s.Cfg.MaxUploadBytes + 64<<10),
		}))
	}

	g := s.E.Group("/images")
	g.GET("/*", s.images.Serve)
	g.POST("", s.images.Upload, uploadLimits...)
	g.DELETE("/*", s.images.Delete)

	s.E.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})
}
