package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/Bigsouley03/cat-payment-app/internal/model"
	"github.com/Bigsouley03/cat-payment-app/internal/render"
	"github.com/Bigsouley03/cat-payment-app/internal/services"
	xhttp "github.com/Bigsouley03/cat-payment-app/pkg/http"
	"github.com/Bigsouley03/cat-payment-app/pkg/logger"
	"github.com/fasthttp/router"
)

type ReceiptService interface {
	Create(ctx context.Context, p model.ReceiptCreateRequest) (*model.Receipt, error)
	Get(ctx context.Context, id int64) (*model.Receipt, error)
	List(ctx context.Context) ([]*model.Receipt, error)
	Update(ctx context.Context, id int64, p model.ReceiptCreateRequest) (*model.Receipt, error)
	Delete(ctx context.Context, id int64) error
}

type ReceiptHandler struct {
	svc      ReceiptService
	renderer *render.Renderer
}

func RegisterReceiptRoutes(e *router.Group, h *ReceiptHandler) {
	e.GET("/receipts", h.ListReceipts)
	e.GET("/receipts/summary", h.SummarizeReceipts)
	e.POST("/storeReceipt", h.CreateReceipt)
	e.GET("/receipt/{id}", h.GetReceipt)
	e.GET("/receipt/{id}/print", h.PrintReceipt)
	e.PUT("/edit/{id}", h.UpdateReceipt)
	e.DELETE("/delete/{id}", h.DeleteReceipt)
}

func NewReceiptHandler(svc ReceiptService, renderer *render.Renderer) *ReceiptHandler {
	return &ReceiptHandler{
		svc:      svc,
		renderer: renderer,
	}
}

type listReceiptsResponse struct {
	Receipts []*model.Receipt `json:"receipts"`
}

type receiptResponse struct {
	Receipt *model.Receipt `json:"receipt"`
}

type summaryResponse struct {
	Summary services.Summary `json:"summary"`
}

type validationResponse struct {
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors"`
}

/* --------------------------------- Routes ----------------------------------- */

// ListReceipts returns every stored receipt, optionally narrowed by the
// filter query params. The envelope key is plural "receipts".
func (h *ReceiptHandler) ListReceipts(ctx *xhttp.RequestCtx) {
	receipts, err := h.svc.List(ctx)
	if err != nil {
		logger.Error("failed to list receipts", "error", err)
		writeError(ctx, xhttp.StatusInternalServerError, "Erreur lors de la récupération des reçus")
		return
	}

	receipts = services.Filter(receipts, filterFromQuery(ctx))
	if receipts == nil {
		receipts = []*model.Receipt{}
	}
	writeJSON(ctx, xhttp.StatusOK, listReceiptsResponse{Receipts: receipts})
}

// SummarizeReceipts computes the dashboard figures over the (optionally
// filtered) receipt set.
func (h *ReceiptHandler) SummarizeReceipts(ctx *xhttp.RequestCtx) {
	receipts, err := h.svc.List(ctx)
	if err != nil {
		logger.Error("failed to list receipts for summary", "error", err)
		writeError(ctx, xhttp.StatusInternalServerError, "Erreur lors de la récupération des reçus")
		return
	}

	receipts = services.Filter(receipts, filterFromQuery(ctx))
	writeJSON(ctx, xhttp.StatusOK, summaryResponse{Summary: services.Summarize(receipts, time.Now())})
}

func (h *ReceiptHandler) CreateReceipt(ctx *xhttp.RequestCtx) {
	var req model.ReceiptCreateRequest
	if err := readJSON(ctx, &req); err != nil {
		writeError(ctx, xhttp.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}

	receipt, err := h.svc.Create(ctx, req)
	if err != nil {
		h.writeReceiptError(ctx, err, "Erreur lors de la création du reçu")
		return
	}
	writeJSON(ctx, xhttp.StatusCreated, receiptResponse{Receipt: receipt})
}

func (h *ReceiptHandler) GetReceipt(ctx *xhttp.RequestCtx) {
	id, err := paramID(ctx)
	if err != nil {
		writeError(ctx, xhttp.StatusBadRequest, "identifiant invalide")
		return
	}

	receipt, err := h.svc.Get(ctx, id)
	if err != nil {
		h.writeReceiptError(ctx, err, "Erreur lors de la récupération du reçu")
		return
	}
	writeJSON(ctx, xhttp.StatusOK, receiptResponse{Receipt: receipt})
}

// PrintReceipt serves the standalone printable page for one receipt.
func (h *ReceiptHandler) PrintReceipt(ctx *xhttp.RequestCtx) {
	id, err := paramID(ctx)
	if err != nil {
		writeError(ctx, xhttp.StatusBadRequest, "identifiant invalide")
		return
	}

	receipt, err := h.svc.Get(ctx, id)
	if err != nil {
		h.writeReceiptError(ctx, err, "Erreur lors de la récupération du reçu")
		return
	}

	doc := h.renderer.BuildDocument(receipt, time.Now())
	ctx.Response.Header.Set("Content-Type", "text/html; charset=utf-8")
	ctx.Response.SetStatusCode(xhttp.StatusOK)
	if err := h.renderer.RenderHTML(ctx.Response.BodyWriter(), doc); err != nil {
		logger.Error("failed to render receipt", "receipt_id", id, "error", err)
		writeError(ctx, xhttp.StatusInternalServerError, "Erreur lors du rendu du reçu")
	}
}

func (h *ReceiptHandler) UpdateReceipt(ctx *xhttp.RequestCtx) {
	id, err := paramID(ctx)
	if err != nil {
		writeError(ctx, xhttp.StatusBadRequest, "identifiant invalide")
		return
	}

	var req model.ReceiptCreateRequest
	if err := readJSON(ctx, &req); err != nil {
		writeError(ctx, xhttp.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}

	receipt, err := h.svc.Update(ctx, id, req)
	if err != nil {
		h.writeReceiptError(ctx, err, "Erreur lors de la modification du reçu")
		return
	}
	writeJSON(ctx, xhttp.StatusOK, receiptResponse{Receipt: receipt})
}

func (h *ReceiptHandler) DeleteReceipt(ctx *xhttp.RequestCtx) {
	id, err := paramID(ctx)
	if err != nil {
		writeError(ctx, xhttp.StatusBadRequest, "identifiant invalide")
		return
	}

	if err := h.svc.Delete(ctx, id); err != nil {
		h.writeReceiptError(ctx, err, "Erreur lors de la suppression du reçu")
		return
	}
	writeJSON(ctx, xhttp.StatusOK, map[string]string{"message": "Reçu supprimé avec succès."})
}

/* -------------------------------- Helpers ----------------------------------- */

// writeReceiptError maps the error taxonomy onto status codes: validation
// 422, not-found 404, anything else a sanitized 500 with the cause logged.
func (h *ReceiptHandler) writeReceiptError(ctx *xhttp.RequestCtx, err error, genericMsg string) {
	var verr model.ValidationErrors
	if errors.As(err, &verr) {
		writeJSON(ctx, xhttp.StatusUnprocessableEntity, validationResponse{
			Message: verr.Error(),
			Errors:  verr.ByField(),
		})
		return
	}
	if errors.Is(err, services.ErrNotFound) {
		writeError(ctx, xhttp.StatusNotFound, "Reçu non trouvé.")
		return
	}
	logger.Error("receipt store failure", "error", err)
	writeError(ctx, xhttp.StatusInternalServerError, genericMsg)
}

func filterFromQuery(ctx *xhttp.RequestCtx) model.ReceiptFilter {
	return model.ReceiptFilter{
		Search:      query(ctx, "search"),
		PaymentType: query(ctx, "paymentType"),
		Classe:      query(ctx, "classe"),
		DateFrom:    query(ctx, "from"),
		DateTo:      query(ctx, "to"),
	}
}

func paramID(ctx *xhttp.RequestCtx) (int64, error) {
	v, ok := ctx.UserValue("id").(string)
	if !ok {
		return 0, strconv.ErrSyntax
	}
	return strconv.ParseInt(v, 10, 64)
}

func readJSON(ctx *xhttp.RequestCtx, dst any) error {
	body := ctx.PostBody()
	return json.Unmarshal(body, dst)
}

func writeJSON(ctx *xhttp.RequestCtx, status int, v any) {
	b, _ := json.Marshal(v)
	ctx.Response.Header.Set("Content-Type", "application/json; charset=utf-8")
	ctx.Response.SetStatusCode(status)
	ctx.Response.SetBodyRaw(b)
}

func writeError(ctx *xhttp.RequestCtx, status int, msg string) {
	writeJSON(ctx, status, map[string]string{"error": msg})
}

func query(ctx *xhttp.RequestCtx, key string) string {
	return string(ctx.QueryArgs().Peek(key))
}
