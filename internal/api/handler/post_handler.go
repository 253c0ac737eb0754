package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/quillpad/blog-service/internal/api/metrics"
	"github.com/quillpad/blog-service/internal/core/domain"
	"github.com/quillpad/blog-service/internal/core/ports"
)

// PostHandler handles HTTP requests for post operations. Every route is
// behind the Auth middleware, so an owner ID is always present.
type PostHandler struct {
	service ports.PostService
}

func NewPostHandler(service ports.PostService) *PostHandler {
	return &PostHandler{service: service}
}

// List handles GET /posts.
//
// @Summary      List the caller's posts, newest first
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Post
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /posts [get]
func (h *PostHandler) List(c echo.Context) error {
	ownerID, err := ctxOwnerID(c)
	if err != nil {
		return err
	}

	posts, err := h.service.List(c.Request().Context(), ownerID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, posts)
}

// Get handles GET /posts/:id.
//
// @Summary      Get one of the caller's posts
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Post ID"
// @Success      200  {object}  domain.Post
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /posts/{id} [get]
func (h *PostHandler) Get(c echo.Context) error {
	ownerID, err := ctxOwnerID(c)
	if err != nil {
		return err
	}

	postID, err := pathID(c)
	if err != nil {
		return err
	}

	post, err := h.service.Get(c.Request().Context(), ownerID, postID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, post)
}

// Create handles POST /posts.
//
// @Summary      Create a post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      postRequest  true  "Title and content"
// @Success      201   {object}  domain.Post
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /posts [post]
func (h *PostHandler) Create(c echo.Context) error {
	ownerID, err := ctxOwnerID(c)
	if err != nil {
		return err
	}

	var req postRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	post, err := h.service.Create(c.Request().Context(), ownerID, req.Title, req.Content)
	if err != nil {
		return err
	}

	metrics.PostOperationsTotal.WithLabelValues("create").Inc()

	return c.JSON(http.StatusCreated, post)
}

// Update handles PUT /posts/:id.
//
// @Summary      Update one of the caller's posts
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int          true  "Post ID"
// @Param        body  body      postRequest  true  "New title and content"
// @Success      200   {object}  domain.Post
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /posts/{id} [put]
func (h *PostHandler) Update(c echo.Context) error {
	ownerID, err := ctxOwnerID(c)
	if err != nil {
		return err
	}

	postID, err := pathID(c)
	if err != nil {
		return err
	}

	var req postRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	post, err := h.service.Update(c.Request().Context(), ownerID, postID, req.Title, req.Content)
	if err != nil {
		return err
	}

	metrics.PostOperationsTotal.WithLabelValues("update").Inc()

	return c.JSON(http.StatusOK, post)
}

// Delete handles DELETE /posts/:id.
//
// @Summary      Delete one of the caller's posts
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Post ID"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /posts/{id} [delete]
func (h *PostHandler) Delete(c echo.Context) error {
	ownerID, err := ctxOwnerID(c)
	if err != nil {
		return err
	}

	postID, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), ownerID, postID); err != nil {
		return err
	}

	metrics.PostOperationsTotal.WithLabelValues("delete").Inc()

	return c.JSON(http.StatusOK, messageResponse{Message: "Post deleted successfully"})
}

// pathID parses the :id route parameter. A non-numeric ID cannot match any
// row, so it is reported as not found rather than as a bad request.
func pathID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, domain.ErrPostNotFound
	}
	return id, nil
}
