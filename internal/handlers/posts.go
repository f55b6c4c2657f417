package handlers

import (
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"strconv"

	"github.com/The-Blind-Code/Blog-Post/internal/models"
	"github.com/The-Blind-Code/Blog-Post/internal/service"

	"github.com/gin-gonic/gin"
)

const avatarSize = 100

type postInput struct {
	Title    string `form:"title" binding:"required"`
	Subtitle string `form:"subtitle" binding:"required"`
	ImgURL   string `form:"img_url" binding:"required,url"`
	Body     string `form:"body" binding:"required"`
}

type commentInput struct {
	Text string `form:"text" binding:"required"`
}

// commentView pairs a comment with the avatar link templates render.
type commentView struct {
	models.Comment
	AvatarURL string
}

func (h *Handler) index(c *gin.Context) {
	posts, err := h.services.ListPosts()
	if err != nil {
		h.serverError(c, "list_posts_failed", err)
		return
	}
	c.HTML(http.StatusOK, "index.html", h.viewData(c, gin.H{"Posts": posts}))
}

// postID parses the :id route param. Non-numeric ids fall through to the
// same 404 as a missing post.
func postID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	return id, err == nil
}

func (h *Handler) renderPost(c *gin.Context, post *models.Post, commentErr string) {
	comments, err := h.services.ListForPost(post.ID)
	if err != nil {
		h.serverError(c, "list_comments_failed", err, "post_id", post.ID)
		return
	}
	views := make([]commentView, 0, len(comments))
	for _, cm := range comments {
		views = append(views, commentView{
			Comment:   cm,
			AvatarURL: service.GravatarURL(cm.AuthorEmail, avatarSize),
		})
	}
	c.HTML(http.StatusOK, "post.html", h.viewData(c, gin.H{
		"Post":         post,
		"Body":         template.HTML(post.Body), // admin-authored rich text
		"Comments":     views,
		"CommentError": commentErr,
	}))
}

func (h *Handler) showPost(c *gin.Context) {
	id, ok := postID(c)
	if !ok {
		h.notFound(c)
		return
	}
	post, err := h.services.GetPost(id)
	if err != nil {
		if errors.Is(err, service.ErrPostNotFound) {
			h.notFound(c)
			return
		}
		h.serverError(c, "get_post_failed", err, "post_id", id)
		return
	}
	h.renderPost(c, post, "")
}

// addComment persists a comment by the current identity on an existing post.
// Anonymous submissions are sent to the login page instead.
func (h *Handler) addComment(c *gin.Context) {
	id, ok := postID(c)
	if !ok {
		h.notFound(c)
		return
	}
	post, err := h.services.GetPost(id)
	if err != nil {
		if errors.Is(err, service.ErrPostNotFound) {
			h.notFound(c)
			return
		}
		h.serverError(c, "get_post_failed", err, "post_id", id)
		return
	}

	u, ok := currentUser(c)
	if !ok {
		setFlash(c, "You need to log in or register to comment.")
		c.Redirect(http.StatusFound, "/login")
		return
	}

	var input commentInput
	if err := c.ShouldBind(&input); err != nil {
		h.renderPost(c, post, "Comment text is required.")
		return
	}

	if _, err := h.services.AddComment(input.Text, u.ID, post.ID); err != nil {
		h.serverError(c, "add_comment_failed", err, "post_id", post.ID, "user_id", u.ID)
		return
	}
	c.Redirect(http.StatusFound, fmt.Sprintf("/post/%d", post.ID))
}

func (h *Handler) renderPostForm(c *gin.Context, isEdit bool, post gin.H, errMsg string) {
	c.HTML(http.StatusOK, "make-post.html", h.viewData(c, gin.H{
		"IsEdit": isEdit,
		"Form":   post,
		"Error":  errMsg,
	}))
}

func (h *Handler) newPostForm(c *gin.Context) {
	h.renderPostForm(c, false, formEcho(c), "")
}

func (h *Handler) newPostSubmit(c *gin.Context) {
	var input postInput
	if err := c.ShouldBind(&input); err != nil {
		h.renderPostForm(c, false, formEcho(c), "All fields are required and the image must be a valid URL.")
		return
	}

	u, _ := currentUser(c) // guaranteed by requireAdmin
	_, err := h.services.CreatePost(service.PostInput{
		Title:    input.Title,
		Subtitle: input.Subtitle,
		Body:     input.Body,
		ImgURL:   input.ImgURL,
	}, u.ID)
	if err != nil {
		if errors.Is(err, service.ErrTitleTaken) {
			h.renderPostForm(c, false, formEcho(c), "A post with that title already exists")
			return
		}
		h.serverError(c, "create_post_failed", err, "title", input.Title)
		return
	}
	c.Redirect(http.StatusFound, "/")
}

func (h *Handler) editPostForm(c *gin.Context) {
	id, ok := postID(c)
	if !ok {
		h.notFound(c)
		return
	}
	post, err := h.services.GetPost(id)
	if err != nil {
		if errors.Is(err, service.ErrPostNotFound) {
			h.notFound(c)
			return
		}
		h.serverError(c, "get_post_failed", err, "post_id", id)
		return
	}
	h.renderPostForm(c, true, gin.H{
		"Title":    post.Title,
		"Subtitle": post.Subtitle,
		"ImgURL":   post.ImgURL,
		"Body":     post.Body,
	}, "")
}

func (h *Handler) editPostSubmit(c *gin.Context) {
	id, ok := postID(c)
	if !ok {
		h.notFound(c)
		return
	}

	var input postInput
	if err := c.ShouldBind(&input); err != nil {
		h.renderPostForm(c, true, formEcho(c), "All fields are required and the image must be a valid URL.")
		return
	}

	err := h.services.UpdatePost(id, service.PostInput{
		Title:    input.Title,
		Subtitle: input.Subtitle,
		Body:     input.Body,
		ImgURL:   input.ImgURL,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPostNotFound):
			h.notFound(c)
		case errors.Is(err, service.ErrTitleTaken):
			h.renderPostForm(c, true, formEcho(c), "A post with that title already exists")
		default:
			h.serverError(c, "update_post_failed", err, "post_id", id)
		}
		return
	}
	c.Redirect(http.StatusFound, fmt.Sprintf("/post/%d", id))
}

func (h *Handler) deletePost(c *gin.Context) {
	id, ok := postID(c)
	if !ok {
		h.notFound(c)
		return
	}
	if err := h.services.DeletePost(id); err != nil {
		if errors.Is(err, service.ErrPostNotFound) {
			h.notFound(c)
			return
		}
		h.serverError(c, "delete_post_failed", err, "post_id", id)
		return
	}
	c.Redirect(http.StatusFound, "/")
}

// formEcho echoes submitted fields back into a re-rendered form.
func formEcho(c *gin.Context) gin.H {
	return gin.H{
		"Title":    c.PostForm("title"),
		"Subtitle": c.PostForm("subtitle"),
		"ImgURL":   c.PostForm("img_url"),
		"Body":     c.PostForm("body"),
	}
}
