package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/client-tracker/internal/domain/client"
	"github.com/BruksfildServices01/client-tracker/internal/export"
	"github.com/BruksfildServices01/client-tracker/internal/httperr"
	"github.com/BruksfildServices01/client-tracker/internal/metrics"
	"github.com/BruksfildServices01/client-tracker/internal/models"
	"github.com/BruksfildServices01/client-tracker/internal/session"
	ucClient "github.com/BruksfildServices01/client-tracker/internal/usecase/client"
)

const msgInvalidClient = "資料格式錯誤：日期請使用 YYYY/MM/DD，姓名最多 50 字，地址最多 200 字"

// ======================================================
// HANDLER
// ======================================================

type ClientHandler struct {
	list   *ucClient.ListClients
	get    *ucClient.GetClient
	create *ucClient.CreateClient
	update *ucClient.UpdateClient
	delete *ucClient.DeleteClient
	loc    *time.Location
}

func NewClientHandler(
	list *ucClient.ListClients,
	get *ucClient.GetClient,
	create *ucClient.CreateClient,
	update *ucClient.UpdateClient,
	delete *ucClient.DeleteClient,
	loc *time.Location,
) *ClientHandler {
	return &ClientHandler{
		list:   list,
		get:    get,
		create: create,
		update: update,
		delete: delete,
		loc:    loc,
	}
}

// ======================================================
// REQUESTS / VIEW
// ======================================================

type ClientForm struct {
	Name            string `form:"name"`
	HouseAddress    string `form:"house_address"`
	RegisterAddress string `form:"register_address"`
	Notes           string `form:"notes"`
	NextFollow      string `form:"next_follow"`
}

func (f ClientForm) input() ucClient.ClientInput {
	return ucClient.ClientInput{
		Name:            f.Name,
		HouseAddress:    f.HouseAddress,
		RegisterAddress: f.RegisterAddress,
		Notes:           f.Notes,
		NextFollow:      f.NextFollow,
	}
}

type clientRow struct {
	ID              uint
	Name            string
	HouseAddress    string
	RegisterAddress string
	FirstContact    string
	NextFollow      string
	Notes           string
}

func (h *ClientHandler) rows(clients []models.Client) []clientRow {
	out := make([]clientRow, 0, len(clients))
	for _, c := range clients {
		out = append(out, clientRow{
			ID:              c.ID,
			Name:            c.Name,
			HouseAddress:    c.HouseAddress,
			RegisterAddress: c.RegisterAddress,
			FirstContact:    c.FirstContact.In(h.loc).Format(export.FirstContactLayout),
			NextFollow:      c.NextFollow.In(h.loc).Format(export.NextFollowLayout),
			Notes:           c.Notes,
		})
	}
	return out
}

// ======================================================
// LIST
// ======================================================

func (h *ClientHandler) List(c *gin.Context) {
	s := session.MustFrom(c)

	filter := ucClient.ListFilter{
		Search:   c.Query("q"),
		DueToday: c.Query("today") == "1",
	}

	res, err := h.list.Execute(c.Request.Context(), s, filter)
	if err != nil {
		httperr.Internal(c, "list_clients", err)
		return
	}

	render(c, http.StatusOK, "list", gin.H{
		"Clients":    h.rows(res.Clients),
		"Search":     filter.Search,
		"TodayFlag":  filter.DueToday,
		"TodayStr":   res.Today.Format(export.NextFollowLayout),
		"TodayCount": res.TodayCount,
	})
}

// ======================================================
// ADD
// ======================================================

func (h *ClientHandler) formPage(c *gin.Context, status int, title, action string, editing bool, form ClientForm, errMsg string) {
	render(c, status, "client_form", gin.H{
		"Title":          title,
		"Action":         action,
		"Editing":        editing,
		"Form":           form,
		"Error":          errMsg,
		"NextFollowHint": domain.DefaultNextFollow(time.Now().In(h.loc)).Format(domain.FollowDateLayout),
	})
}

func (h *ClientHandler) AddPage(c *gin.Context) {
	h.formPage(c, http.StatusOK, "新增客戶", "/add", false, ClientForm{}, "")
}

func (h *ClientHandler) Add(c *gin.Context) {
	s := session.MustFrom(c)

	var form ClientForm
	_ = c.ShouldBind(&form)

	if _, err := h.create.Execute(c.Request.Context(), s, form.input()); err != nil {
		if httperr.IsBusiness(err, httperr.CodeValidation) {
			h.formPage(c, http.StatusBadRequest, "新增客戶", "/add", false, form, msgInvalidClient)
			return
		}
		httperr.Internal(c, "create_client", err)
		return
	}

	metrics.ClientMutationsTotal.WithLabelValues("create").Inc()
	redirect(c, "/list")
}

// ======================================================
// EDIT
// ======================================================

func (h *ClientHandler) EditPage(c *gin.Context) {
	s := session.MustFrom(c)
	id, ok := paramID(c)
	if !ok {
		return
	}

	client, err := h.get.Execute(c.Request.Context(), s, id)
	if err != nil {
		if !writeBusiness(c, err, httperr.MsgForbiddenClient) {
			httperr.Internal(c, "get_client", err)
		}
		return
	}

	form := ClientForm{
		Name:            client.Name,
		HouseAddress:    client.HouseAddress,
		RegisterAddress: client.RegisterAddress,
		Notes:           client.Notes,
		NextFollow:      client.NextFollow.In(h.loc).Format(domain.FollowDateLayout),
	}
	h.formPage(c, http.StatusOK, "編輯客戶", c.Request.URL.Path, true, form, "")
}

func (h *ClientHandler) Edit(c *gin.Context) {
	s := session.MustFrom(c)
	id, ok := paramID(c)
	if !ok {
		return
	}

	var form ClientForm
	_ = c.ShouldBind(&form)

	if _, err := h.update.Execute(c.Request.Context(), s, id, form.input()); err != nil {
		if httperr.IsBusiness(err, httperr.CodeValidation) {
			h.formPage(c, http.StatusBadRequest, "編輯客戶", c.Request.URL.Path, true, form, msgInvalidClient)
			return
		}
		if !writeBusiness(c, err, httperr.MsgForbiddenClient) {
			httperr.Internal(c, "update_client", err)
		}
		return
	}

	metrics.ClientMutationsTotal.WithLabelValues("update").Inc()
	redirect(c, "/list")
}

// ======================================================
// DELETE
// ======================================================

func (h *ClientHandler) Delete(c *gin.Context) {
	s := session.MustFrom(c)
	id, ok := paramID(c)
	if !ok {
		return
	}

	if err := h.delete.Execute(c.Request.Context(), s, id); err != nil {
		if !writeBusiness(c, err, httperr.MsgForbiddenClient) {
			httperr.Internal(c, "delete_client", err)
		}
		return
	}

	metrics.ClientMutationsTotal.WithLabelValues("delete").Inc()
	redirect(c, "/list")
}
