package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/cppla/userboard/dtos"
	"github.com/cppla/userboard/services"
	"github.com/cppla/userboard/utils"
)

// UserController binds the /users routes to the services.
type UserController struct {
	users *services.UsersService
	posts *services.PostsService
}

// NewUserController creates a new UserController instance.
func NewUserController(db *gorm.DB) *UserController {
	posts := services.NewPostsService(db)
	return &UserController{
		users: services.NewUsersService(db, posts),
		posts: posts,
	}
}

// GetOne returns a single user by id.
func (u *UserController) GetOne(ctx *gin.Context) {
	id := ctx.Param("id")
	user, err := u.users.GetByID(id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.NotFound(ctx, "User not found | id="+id)
			return
		}
		utils.InternalError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dtos.NewUserOut(*user))
}

// Create validates the payload and persists a new user with any nested posts.
func (u *UserController) Create(ctx *gin.Context) {
	var req dtos.UserIn
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(ctx, err.Error())
		return
	}

	user := req.ToModel()
	saved, err := u.users.Save(&user)
	if err != nil {
		utils.InternalError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dtos.NewUserOut(*saved))
}

// Update merges a partial payload onto an existing user.
func (u *UserController) Update(ctx *gin.Context) {
	id := ctx.Param("id")
	var req dtos.UserUpdate
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(ctx, err.Error())
		return
	}

	attrs := req.ToModel()
	updated, err := u.users.Update(id, &attrs)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.NotFound(ctx, "User not found | id="+id)
			return
		}
		utils.InternalError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dtos.NewUserOut(*updated))
}

// Delete removes a user and their posts and returns the deleted record.
func (u *UserController) Delete(ctx *gin.Context) {
	id := ctx.Param("id")
	deleted, err := u.users.DeleteByID(id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.NotFound(ctx, "User not found | id="+id)
			return
		}
		utils.InternalError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dtos.NewUserOut(*deleted))
}

// GetUserPosts returns every post owned by the given user id. No existence
// check on the user: an unknown id yields an empty array.
func (u *UserController) GetUserPosts(ctx *gin.Context) {
	posts, err := u.posts.FindByUserID(ctx.Param("id"))
	if err != nil {
		utils.InternalError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dtos.NewPostOuts(posts))
}

// GetTitles returns the user's email together with all their post titles.
func (u *UserController) GetTitles(ctx *gin.Context) {
	id := ctx.Param("id")
	titles, err := u.users.GetEmailAndPostTitles(id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.NotFound(ctx, "User not found | id="+id)
			return
		}
		utils.InternalError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, titles)
}
