package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) serveFile(c *gin.Context) {
	requested := requestedPath(c)

	result, ok := s.roots.Resolve(requested)
	if !ok {
		s.access.Miss(requested)
		s.respondError(c, errNotFound)
		return
	}

	file, err := openRegular(result.Path)
	if err != nil {
		s.access.Miss(requested)
		s.respondError(c, err)
		return
	}
	defer file.Close()

	s.access.Hit(requested, result.Root, result.Path)
	c.DataFromReader(http.StatusOK, file.Size, file.ContentType, file, nil)
}

// respondError answers every failure as a 404. A resolved file that fails
// to open is indistinguishable from one that was never there.
func (s *Server) respondError(c *gin.Context, err error) {
	var httpErr *httpError
	if !errors.As(err, &httpErr) {
		s.log.Warn().
			Err(err).
			Str("request_id", c.GetString(requestIDKey)).
			Msg("resolved file could not be opened")

		httpErr = errNotFound
	}

	c.String(httpErr.Status, httpErr.Message)
}
