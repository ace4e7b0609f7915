package renderer

import (
	"github.com/unrolled/render"
)

// New builds the JSON renderer shared by every handler. The presentation
// layer consuming these payloads lives outside this service.
func New() *render.Render {
	return render.New(render.Options{
		IndentJSON: true,
	})
}
