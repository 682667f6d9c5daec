package router

import (
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/nikitaapatil/howtobangalore/internal/apperr"
	"github.com/nikitaapatil/howtobangalore/internal/search"
	"github.com/nikitaapatil/howtobangalore/internal/toc"
	"github.com/nikitaapatil/howtobangalore/internal/view"
)

// maxTops bounds the tops query parameter of the toc endpoint.
const maxTops = 500

type PagesRouter struct {
	e        *echo.Echo
	pages    *view.Pages
	resolver view.ArticleResolver
}

func NewPagesRouter(e *echo.Echo, pages *view.Pages, resolver view.ArticleResolver) *PagesRouter {
	return &PagesRouter{
		e:        e,
		pages:    pages,
		resolver: resolver,
	}
}

func (r *PagesRouter) Bind() {
	g := r.e.Group("/api/pages")
	g.GET("/home", r.homeHandler)
	g.GET("/articles", r.articleHandler)
	g.GET("/articles/:identifier", r.articleHandler)
	g.GET("/articles/:identifier/toc", r.tocHandler)
	g.GET("/search", r.searchHandler)
	g.GET("/categories", r.categoriesHandler)
	g.GET("/categories/:category", r.categoryHandler)
	g.GET("/sitemap", r.sitemapHandler)
}

// homeHandler godoc
// @Summary Home page
// @Description Featured articles, latest articles and the category index
// @Tags pages
// @Produce json
// @Success 200 {object} view.HomeScreen
// @Failure 502 {object} view.HomeScreen
// @Router /api/pages/home [get]
func (r *PagesRouter) homeHandler(c echo.Context) error {
	screen := r.pages.Home(c.Request().Context())
	return c.JSON(screen.Status.HTTPStatus(), screen)
}

// articleHandler godoc
// @Summary Article page
// @Description Resolves a slug or legacy numeric id and renders the article with related articles and its table of contents
// @Tags pages
// @Produce json
// @Param identifier path string true "Article slug or legacy id"
// @Success 200 {object} view.ArticleScreen
// @Failure 400 {object} view.ArticleScreen
// @Failure 404 {object} view.ArticleScreen
// @Failure 502 {object} view.ArticleScreen
// @Router /api/pages/articles/{identifier} [get]
func (r *PagesRouter) articleHandler(c echo.Context) error {
	page := view.NewArticlePage(r.resolver, nil)
	defer page.Close()

	page.Load(c.Request().Context(), c.Param("identifier"))
	screen := page.Screen()
	return c.JSON(screen.Status.HTTPStatus(), screen)
}

// tocHandler godoc
// @Summary Article table of contents
// @Description Headings of an article and the active heading for the given element offsets
// @Tags pages
// @Produce json
// @Param identifier path string true "Article slug or legacy id"
// @Param tops query string false "Comma separated top offsets of the heading elements, in document order"
// @Success 200 {object} view.TOCScreen
// @Failure 400 {object} apperr.ErrorResponse
// @Failure 404 {object} view.TOCScreen
// @Failure 502 {object} view.TOCScreen
// @Router /api/pages/articles/{identifier}/toc [get]
func (r *PagesRouter) tocHandler(c echo.Context) error {
	tops, err := parseTops(c.QueryParam("tops"))
	if err != nil {
		return err
	}

	bus := toc.NewScrollBus()
	page := view.NewArticlePage(r.resolver, bus)
	defer page.Close()

	page.Load(c.Request().Context(), c.Param("identifier"))
	if len(tops) > 0 {
		bus.Publish(toc.ScrollEvent{Tops: tops})
	}

	screen := page.TOC()
	return c.JSON(screen.Status.HTTPStatus(), screen)
}

// searchHandler godoc
// @Summary Search page
// @Description Case-insensitive substring search over title, excerpt and body, with an optional category filter
// @Tags pages
// @Produce json
// @Param q query string false "Free text"
// @Param category query string false "Category, or all"
// @Success 200 {object} view.SearchScreen
// @Failure 502 {object} view.SearchScreen
// @Router /api/pages/search [get]
func (r *PagesRouter) searchHandler(c echo.Context) error {
	screen := r.pages.Search(c.Request().Context(), search.ParseQuery(c.QueryParams()))
	return c.JSON(screen.Status.HTTPStatus(), screen)
}

// categoriesHandler godoc
// @Summary Category index
// @Tags pages
// @Produce json
// @Success 200 {object} view.CategoriesScreen
// @Failure 502 {object} view.CategoriesScreen
// @Router /api/pages/categories [get]
func (r *PagesRouter) categoriesHandler(c echo.Context) error {
	screen := r.pages.Categories(c.Request().Context())
	return c.JSON(screen.Status.HTTPStatus(), screen)
}

// categoryHandler godoc
// @Summary Category page
// @Tags pages
// @Produce json
// @Param category path string true "Category"
// @Success 200 {object} view.CategoryScreen
// @Failure 404 {object} view.CategoryScreen
// @Failure 502 {object} view.CategoryScreen
// @Router /api/pages/categories/{category} [get]
func (r *PagesRouter) categoryHandler(c echo.Context) error {
	screen := r.pages.Category(c.Request().Context(), c.Param("category"))
	return c.JSON(screen.Status.HTTPStatus(), screen)
}

// sitemapHandler godoc
// @Summary Sitemap
// @Description Articles grouped by category
// @Tags pages
// @Produce json
// @Success 200 {object} view.SitemapScreen
// @Failure 502 {object} view.SitemapScreen
// @Router /api/pages/sitemap [get]
func (r *PagesRouter) sitemapHandler(c echo.Context) error {
	screen := r.pages.Sitemap(c.Request().Context())
	return c.JSON(screen.Status.HTTPStatus(), screen)
}

func parseTops(raw string) ([]float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	parts := strings.Split(raw, ",")
	if len(parts) > maxTops {
		return nil, apperr.NewValidation("too many heading offsets")
	}

	tops := make([]float64, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, apperr.NewValidationWrap("tops must be a comma separated list of numbers", err)
		}
		tops = append(tops, v)
	}
	return tops, nil
}
