package main

import (
	"bytes"
	"context"
	"flag"
	"image"
	"image/png"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo"
	"github.com/labstack/echo/middleware"
	"github.com/lovetron/shadetex"
	"github.com/lovetron/shadetex/watch"
)

var (
	addr     = flag.String("addr", ":8090", "set the address to listen on")
	texture  = flag.String("texture", shadetex.DefaultOutputPath, "set the texture path to serve and watch")
	scale    = flag.Int("scale", 16, "set the preview scale factor")
	interval = flag.Duration("interval", time.Second, "set the poll interval for file changes")
)

var upgrader = websocket.Upgrader{
	HandshakeTimeout: 5 * time.Second,
}

const indexPage = `<!DOCTYPE html>
<html>
<head><title>shadetex preview</title></head>
<body style="background:#222;text-align:center">
<img src="/preview.png" style="image-rendering:pixelated;margin-top:2em">
<script>
var ws = new WebSocket("ws://" + location.host + "/api/reload");
ws.onmessage = function() { location.reload(); };
</script>
</body>
</html>`

func main() {
	flag.Parse()
	log.SetFlags(0)

	hub := watch.NewHub()

	watcher := &watch.Watcher{
		Path:     *texture,
		Interval: *interval,
	}
	go watcher.Run(context.Background(), func() {
		log.Println("texture changed, notifying clients")
		hub.Broadcast(watch.Event{Type: watch.EventReload, Path: *texture})
	})

	e := echo.New()

	e.Use(middleware.Logger())

	e.GET("/", func(c echo.Context) error {
		return c.HTML(http.StatusOK, indexPage)
	})

	e.File("/texture.png", *texture)

	e.GET("/preview.png", func(c echo.Context) error {
		img, err := shadetex.BuildTexture(shadetex.DefaultPalette, shadetex.DefaultShadowTable)
		if err != nil {
			return err
		}

		preview, err := shadetex.Preview(img, *scale)
		if err != nil {
			return err
		}

		return writePNG(c, preview)
	})

	api := e.Group("/api")

	api.GET("/reload", func(c echo.Context) error {
		ws, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
		if err != nil {
			return err
		}

		hub.HandleConn(ws)

		return nil
	})

	api.POST("/rebuild", func(c echo.Context) error {
		img, err := shadetex.BuildTexture(shadetex.DefaultPalette, shadetex.DefaultShadowTable)
		if err != nil {
			return err
		}

		if err := shadetex.WriteTexture(*texture, img); err != nil {
			return err
		}

		return c.JSON(http.StatusOK, map[string]string{"path": *texture})
	})

	log.Fatal(e.Start(*addr))
}

func writePNG(c echo.Context, img image.Image) error {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return err
	}

	return c.Blob(http.StatusOK, "image/png", buf.Bytes())
}
