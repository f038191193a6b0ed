package internal

import "embed"

//go:embed static
var staticAssets embed.FS

// mountAssets serves the embedded stylesheet and scripts the admin pages
// reference.
func mountAssets(r Router) {
	r.GET("/css/main.css", serveAsset("css/main.css", "text/css; charset=utf-8"))
	r.GET("/js/enum.js", serveAsset("js/enum.js", "text/javascript; charset=utf-8"))
}

func serveAsset(name, contentType string) HandlerFunc {
	return func(c Context) error {
		data, err := staticAssets.ReadFile("static/" + name)
		if err != nil {
			return ErrNotFound("asset not found", WithError(err))
		}
		c.SetHeader("Content-Type", contentType)
		c.SetHeader("Cache-Control", "public, max-age=3600")
		_, err = c.Response().Write(data)
		return err
	}
}
