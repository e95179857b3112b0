package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/client-tracker/internal/httperr"
	"github.com/BruksfildServices01/client-tracker/internal/session"
	ucUser "github.com/BruksfildServices01/client-tracker/internal/usecase/user"
)

const (
	msgUsernameTaken = "此帳號已存在"
	msgUserInvalid   = "請填寫帳號、密碼並選擇正確的角色"
)

// ======================================================
// HANDLER
// ======================================================

type UserHandler struct {
	list   *ucUser.ListUsers
	get    *ucUser.GetUser
	create *ucUser.CreateUser
	update *ucUser.UpdateUser
	delete *ucUser.DeleteUser
}

func NewUserHandler(
	list *ucUser.ListUsers,
	get *ucUser.GetUser,
	create *ucUser.CreateUser,
	update *ucUser.UpdateUser,
	delete *ucUser.DeleteUser,
) *UserHandler {
	return &UserHandler{
		list:   list,
		get:    get,
		create: create,
		update: update,
		delete: delete,
	}
}

// --------- Requests ---------

type UserForm struct {
	Username   string `form:"username"`
	Password   string `form:"password"`
	EmployeeID string `form:"employee_id"`
	Role       string `form:"role"`
}

func (f UserForm) input() ucUser.UserInput {
	return ucUser.UserInput{
		Username:   f.Username,
		Password:   f.Password,
		EmployeeID: f.EmployeeID,
		Role:       f.Role,
	}
}

func (h *UserHandler) formPage(c *gin.Context, status int, action string, editing bool, form UserForm, errMsg string) {
	title := "新增員工"
	if editing {
		title = "編輯員工"
	}
	// a senha nunca volta para o formulário
	form.Password = ""
	render(c, status, "user_form", gin.H{
		"Title":   title,
		"Action":  action,
		"Editing": editing,
		"Form":    form,
		"Error":   errMsg,
	})
}

// formError devolve true quando o erro foi renderizado no formulário
func (h *UserHandler) formError(c *gin.Context, err error, action string, editing bool, form UserForm) bool {
	switch httperr.Code(err) {
	case httperr.CodeConflict:
		h.formPage(c, http.StatusConflict, action, editing, form, msgUsernameTaken)
	case httperr.CodeValidation:
		h.formPage(c, http.StatusBadRequest, action, editing, form, msgUserInvalid)
	default:
		return false
	}
	return true
}

// ======================================================
// LIST
// ======================================================

func (h *UserHandler) List(c *gin.Context) {
	s := session.MustFrom(c)

	users, err := h.list.Execute(c.Request.Context(), s)
	if err != nil {
		if !writeBusiness(c, err, httperr.MsgAdminOnly) {
			httperr.Internal(c, "list_users", err)
		}
		return
	}

	render(c, http.StatusOK, "users", gin.H{
		"Title": "員工管理",
		"Users": users,
	})
}

// ======================================================
// ADD
// ======================================================

func (h *UserHandler) AddPage(c *gin.Context) {
	h.formPage(c, http.StatusOK, "/users/add", false, UserForm{Role: session.RoleUser.String()}, "")
}

func (h *UserHandler) Add(c *gin.Context) {
	s := session.MustFrom(c)

	var form UserForm
	_ = c.ShouldBind(&form)

	if _, err := h.create.Execute(c.Request.Context(), s, form.input()); err != nil {
		if h.formError(c, err, "/users/add", false, form) {
			return
		}
		if !writeBusiness(c, err, httperr.MsgAdminOnly) {
			httperr.Internal(c, "create_user", err)
		}
		return
	}

	redirect(c, "/users")
}

// ======================================================
// EDIT
// ======================================================

func (h *UserHandler) EditPage(c *gin.Context) {
	s := session.MustFrom(c)
	id, ok := paramID(c)
	if !ok {
		return
	}

	u, err := h.get.Execute(c.Request.Context(), s, id)
	if err != nil {
		if !writeBusiness(c, err, httperr.MsgAdminOnly) {
			httperr.Internal(c, "get_user", err)
		}
		return
	}

	form := UserForm{
		Username:   u.Username,
		EmployeeID: u.EmployeeID,
		Role:       u.Role,
	}
	h.formPage(c, http.StatusOK, c.Request.URL.Path, true, form, "")
}

func (h *UserHandler) Edit(c *gin.Context) {
	s := session.MustFrom(c)
	id, ok := paramID(c)
	if !ok {
		return
	}

	var form UserForm
	_ = c.ShouldBind(&form)

	if _, err := h.update.Execute(c.Request.Context(), s, id, form.input()); err != nil {
		if h.formError(c, err, c.Request.URL.Path, true, form) {
			return
		}
		if !writeBusiness(c, err, httperr.MsgAdminOnly) {
			httperr.Internal(c, "update_user", err)
		}
		return
	}

	redirect(c, "/users")
}

// ======================================================
// DELETE
// ======================================================

func (h *UserHandler) Delete(c *gin.Context) {
	s := session.MustFrom(c)
	id, ok := paramID(c)
	if !ok {
		return
	}

	if err := h.delete.Execute(c.Request.Context(), s, id); err != nil {
		if !writeBusiness(c, err, httperr.MsgAdminOnly) {
			httperr.Internal(c, "delete_user", err)
		}
		return
	}

	redirect(c, "/users")
}
