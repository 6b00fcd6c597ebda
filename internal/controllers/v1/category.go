package v1

import (
	"net/http"

	"github.com/fintrack/backend/internal/httputil"
	"github.com/fintrack/backend/internal/mutations"
	"github.com/gin-gonic/gin"
)

// RegisterCategoryRoutes registers the routes for categories with
// the RouterGroup that is passed.
func (co Controller) RegisterCategoryRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", httputil.OptionsGetPost)
		r.GET("", co.GetCategories)
		r.POST("", co.CreateCategory)
	}

	// Category with ID
	{
		r.OPTIONS("/:id", httputil.OptionsGetPatchDelete)
		r.GET("/:id", co.GetCategory)
		r.PATCH("/:id", co.UpdateCategory)
		r.DELETE("/:id", co.DeleteCategory)
	}
}

// @Summary		Get categories
// @Description	Returns all categories of the user, ordered by name
// @Tags			Categories
// @Produce		json
// @Success		200	{object}	Response[[]models.Category]
// @Failure		500	{object}	httpError
// @Security		Bearer
// @Router			/v1/categories [get]
func (co Controller) GetCategories(c *gin.Context) {
	categories, err := co.data(c).Categories.List(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, respond(categories))
}

// @Summary		Get category
// @Tags			Categories
// @Produce		json
// @Success		200	{object}	Response[models.Category]
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id	path		string	true	"ID formatted as string"
// @Security		Bearer
// @Router			/v1/categories/{id} [get]
func (co Controller) GetCategory(c *gin.Context) {
	id, err := httputil.ParseUUID(c, "id")
	if err != nil {
		fail(c, err)
		return
	}

	category, err := co.data(c).Categories.Get(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, respond(category))
}

// @Summary		Create category
// @Tags			Categories
// @Produce		json
// @Success		201			{object}	Response[models.Category]
// @Failure		400			{object}	httpError
// @Param			category	body		mutations.CategoryInput	true	"Category"
// @Security		Bearer
// @Router			/v1/categories [post]
func (co Controller) CreateCategory(c *gin.Context) {
	var in mutations.CategoryInput
	if err := httputil.BindData(c, &in); err != nil {
		fail(c, err)
		return
	}

	category, err := co.mutations(c).CreateCategory(c.Request.Context(), in)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, respond(category))
}

// @Summary		Update category
// @Tags			Categories
// @Produce		json
// @Success		200			{object}	Response[models.Category]
// @Failure		400			{object}	httpError
// @Failure		404			{object}	httpError
// @Param			id			path		string					true	"ID formatted as string"
// @Param			category	body		mutations.CategoryInput	true	"Category"
// @Security		Bearer
// @Router			/v1/categories/{id} [patch]
func (co Controller) UpdateCategory(c *gin.Context) {
	id, err := httputil.ParseUUID(c, "id")
	if err != nil {
		fail(c, err)
		return
	}

	category, err := co.data(c).Categories.Get(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}

	in := mutations.CategoryInputFrom(category)
	if err := httputil.BindData(c, &in); err != nil {
		fail(c, err)
		return
	}

	category, err = co.mutations(c).UpdateCategory(c.Request.Context(), id, in)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, respond(category))
}

// @Summary		Delete category
// @Description	Deletes a category and its budgets. Its transactions are kept without category. Needs confirm=true.
// @Tags			Categories
// @Success		204
// @Failure		404		{object}	httpError
// @Failure		409		{object}	httpError
// @Param			id		path		string	true	"ID formatted as string"
// @Param			confirm	query		bool	false	"Confirms the deletion"
// @Security		Bearer
// @Router			/v1/categories/{id} [delete]
func (co Controller) DeleteCategory(c *gin.Context) {
	id, err := httputil.ParseUUID(c, "id")
	if err != nil {
		fail(c, err)
		return
	}

	if err := co.mutations(c).DeleteCategory(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
