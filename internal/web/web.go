// Package web serves the search and favorites screens of the web client.
package web

import (
	"bytes"
	"embed"
	"errors"
	"html/template"
	"log"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"

	"github.com/i474232898/weathernow/internal/app"
	"github.com/i474232898/weathernow/internal/i18n"
)

//go:embed templates/*.html
var templateFS embed.FS

var (
	templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))
	validate  = validator.New()
)

// view is the data every template receives.
type view struct {
	app.State
	T     i18n.Texts
	Langs []i18n.Lang
	Path  string
}

// RegisterRoutes wires the screens and their form actions into the Fiber app.
// Form values outlive the request in app state, so they are copied out of
// Fiber's reused buffers.
func RegisterRoutes(router fiber.Router, a *app.App) {
	router.Get("/", func(c *fiber.Ctx) error {
		return render(c, "search.html", a.Snapshot(), "/")
	})

	router.Get("/favorites", func(c *fiber.Ctx) error {
		return render(c, "favorites.html", a.Snapshot(), "/favorites")
	})

	router.Post("/search", func(c *fiber.Ctx) error {
		a.Search(c.UserContext(), utils.CopyString(c.FormValue("city")))
		return c.Redirect("/", fiber.StatusSeeOther)
	})

	router.Post("/lang", func(c *fiber.Ctx) error {
		a.ChangeLanguage(utils.CopyString(c.FormValue("lang")))
		next := c.FormValue("next")
		if next != "/favorites" {
			next = "/"
		}
		return c.Redirect(next, fiber.StatusSeeOther)
	})

	router.Post("/favorites", func(c *fiber.Ctx) error {
		if err := a.AddFavorite(); err != nil {
			return saveFailed(err)
		}
		return c.Redirect("/", fiber.StatusSeeOther)
	})

	router.Post("/favorites/clear", func(c *fiber.Ctx) error {
		if err := a.ClearFavorites(); err != nil {
			return saveFailed(err)
		}
		return c.Redirect("/favorites", fiber.StatusSeeOther)
	})

	router.Post("/favorites/:id/memo", func(c *fiber.Ctx) error {
		form, err := parseFavoriteForm(c)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		if err := a.UpdateMemo(form.ID, form.Memo); err != nil {
			return saveFailed(err)
		}
		return c.Redirect("/favorites", fiber.StatusSeeOther)
	})

	router.Post("/favorites/:id/delete", func(c *fiber.Ctx) error {
		form, err := parseFavoriteForm(c)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		if err := a.RemoveFavorite(form.ID); err != nil {
			return saveFailed(err)
		}
		return c.Redirect("/favorites", fiber.StatusSeeOther)
	})
}

// ErrorHandler renders handler errors as plain text.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
	}
	return c.Status(code).SendString(err.Error())
}

func render(c *fiber.Ctx, name string, s app.State, path string) error {
	data := view{
		State: s,
		T:     i18n.For(s.Lang),
		Langs: i18n.Langs(),
		Path:  path,
	}

	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		log.Printf("ERROR: rendering %s failed: %v", name, err)
		return fiber.NewError(fiber.StatusInternalServerError, "failed to render page")
	}

	c.Type("html", "utf-8")
	return c.Send(buf.Bytes())
}

func saveFailed(err error) error {
	log.Printf("ERROR: saving favorites failed: %v", err)
	return fiber.NewError(fiber.StatusInternalServerError, "failed to save favorites")
}

// favoriteForm holds the route id and form fields of a favorite action.
type favoriteForm struct {
	ID   int64 `validate:"gt=0"`
	Memo string
}

func parseFavoriteForm(c *fiber.Ctx) (favoriteForm, error) {
	var f favoriteForm

	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return f, errors.New("invalid favorite id")
	}
	f.ID = id
	f.Memo = utils.CopyString(c.FormValue("memo"))

	if err := validate.Struct(f); err != nil {
		return f, errors.New("invalid favorite id")
	}
	return f, nil
}
