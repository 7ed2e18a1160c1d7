package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/silverhalide/studio-api/internal/dto"
	"github.com/silverhalide/studio-api/internal/export"
	"github.com/silverhalide/studio-api/internal/httperr"
	"github.com/silverhalide/studio-api/internal/httpresp"
	"github.com/silverhalide/studio-api/internal/middleware"
	"github.com/silverhalide/studio-api/internal/models"
	"github.com/silverhalide/studio-api/internal/payments"

	jobdomain "github.com/silverhalide/studio-api/internal/domain/job"
	ucjob "github.com/silverhalide/studio-api/internal/usecase/job"
)

// ======================================================
// HANDLER
// ======================================================

type JobHandler struct {
	repo     jobdomain.Repository
	create   *ucjob.CreateJob
	update   *ucjob.UpdateJob
	complete *ucjob.CompleteJob
	delete   *ucjob.DeleteJob
	importUC *ucjob.BatchImportJobs
	payments *payments.Service
}

func NewJobHandler(
	repo jobdomain.Repository,
	create *ucjob.CreateJob,
	update *ucjob.UpdateJob,
	complete *ucjob.CompleteJob,
	deleteUC *ucjob.DeleteJob,
	importUC *ucjob.BatchImportJobs,
	pay *payments.Service,
) *JobHandler {
	return &JobHandler{
		repo:     repo,
		create:   create,
		update:   update,
		complete: complete,
		delete:   deleteUC,
		importUC: importUC,
		payments: pay,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateJobRequest struct {
	Name       string `json:"name"`
	Type       string `json:"type"`
	LeadSource string `json:"lead_source"`
	Location   string `json:"location"`
	Notes      string `json:"notes"`

	MainShootDate    *time.Time `json:"main_shoot_date"`
	MainShootEndDate *time.Time `json:"main_shoot_end_date"`

	ClientName  string `json:"client_name"`
	ClientEmail string `json:"client_email"`
	ClientPhone string `json:"client_phone"`
	ClientID    *uint  `json:"client_id"`

	TotalAmount float64 `json:"total_amount"`
	PaidAmount  float64 `json:"paid_amount"`
}

type CustomFieldRequest struct {
	Key       string `json:"key" binding:"required"`
	Value     string `json:"value"`
	ValueType string `json:"value_type"`
}

// ======================================================
// HELPERS
// ======================================================

func jobIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_job_id", "Invalid job id.")
		return 0, false
	}
	return uint(id), true
}

func mapJobError(c *gin.Context, err error) {
	if httperr.IsBusiness(err, "job_not_found") {
		httperr.NotFound(c, "job_not_found", "Job not found.")
		return
	}
	if code, ok := httperr.BusinessCode(err); ok {
		httperr.BadRequest(c, code, "Request could not be processed.")
		return
	}
	httperr.Internal(c, "job_operation_failed", "Failed to process job.")
}

// ======================================================
// LIST / GET
// ======================================================

func (h *JobHandler) List(c *gin.Context) {
	studioID := c.MustGet(middleware.ContextStudioID).(uint)

	jobs, err := h.repo.ListJobs(c.Request.Context(), studioID)
	if err != nil {
		httperr.Internal(c, "failed_to_list_jobs", "Failed to load jobs.")
		return
	}

	httpresp.List(c, dto.NewJobDTOs(jobs))
}

func (h *JobHandler) Get(c *gin.Context) {
	studioID := c.MustGet(middleware.ContextStudioID).(uint)

	jobID, ok := jobIDParam(c)
	if !ok {
		return
	}

	j, err := h.repo.GetJob(c.Request.Context(), studioID, jobID)
	if err != nil {
		httperr.Internal(c, "failed_to_get_job", "Failed to load job.")
		return
	}
	if j == nil {
		httperr.NotFound(c, "job_not_found", "Job not found.")
		return
	}

	httpresp.OK(c, dto.NewJobDTO(j))
}

// ======================================================
// CREATE / UPDATE / COMPLETE / DELETE
// ======================================================

func (h *JobHandler) Create(c *gin.Context) {
	studioID := c.MustGet(middleware.ContextStudioID).(uint)
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	j, err := h.create.Execute(c.Request.Context(), ucjob.CreateJobInput{
		StudioID:         studioID,
		UserID:           userID,
		Name:             req.Name,
		Type:             req.Type,
		LeadSource:       req.LeadSource,
		Location:         req.Location,
		Notes:            req.Notes,
		MainShootDate:    req.MainShootDate,
		MainShootEndDate: req.MainShootEndDate,
		ClientName:       req.ClientName,
		ClientEmail:      req.ClientEmail,
		ClientPhone:      req.ClientPhone,
		ClientID:         req.ClientID,
		TotalAmount:      req.TotalAmount,
		PaidAmount:       req.PaidAmount,
	})
	if err != nil {
		mapJobError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewJobDTO(j))
}

func (h *JobHandler) Update(c *gin.Context) {
	studioID := c.MustGet(middleware.ContextStudioID).(uint)
	userID := c.MustGet(middleware.ContextUserID).(uint)

	jobID, ok := jobIDParam(c)
	if !ok {
		return
	}

	var in ucjob.UpdateJobInput
	if err := c.ShouldBindJSON(&in); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	in.StudioID = studioID
	in.UserID = userID
	in.JobID = jobID

	j, err := h.update.Execute(c.Request.Context(), in)
	if err != nil {
		mapJobError(c, err)
		return
	}

	httpresp.OK(c, dto.NewJobDTO(j))
}

func (h *JobHandler) Complete(c *gin.Context) {
	studioID := c.MustGet(middleware.ContextStudioID).(uint)
	userID := c.MustGet(middleware.ContextUserID).(uint)

	jobID, ok := jobIDParam(c)
	if !ok {
		return
	}

	j, err := h.complete.Execute(c.Request.Context(), studioID, userID, jobID)
	if err != nil {
		mapJobError(c, err)
		return
	}

	httpresp.OK(c, dto.NewJobDTO(j))
}

func (h *JobHandler) Delete(c *gin.Context) {
	studioID := c.MustGet(middleware.ContextStudioID).(uint)
	userID := c.MustGet(middleware.ContextUserID).(uint)

	jobID, ok := jobIDParam(c)
	if !ok {
		return
	}

	if err := h.delete.Execute(c.Request.Context(), studioID, userID, jobID); err != nil {
		mapJobError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ======================================================
// CUSTOM FIELDS
// ======================================================

func (h *JobHandler) PutCustomFields(c *gin.Context) {
	studioID := c.MustGet(middleware.ContextStudioID).(uint)

	jobID, ok := jobIDParam(c)
	if !ok {
		return
	}

	j, err := h.repo.GetJob(c.Request.Context(), studioID, jobID)
	if err != nil {
		httperr.Internal(c, "failed_to_get_job", "Failed to load job.")
		return
	}
	if j == nil {
		httperr.NotFound(c, "job_not_found", "Job not found.")
		return
	}

	var reqs []CustomFieldRequest
	if err := c.ShouldBindJSON(&reqs); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	fields := make([]models.JobCustomField, 0, len(reqs))
	for _, r := range reqs {
		valueType := r.ValueType
		if valueType == "" {
			valueType = "string"
		}
		fields = append(fields, models.JobCustomField{
			Key:       r.Key,
			Value:     r.Value,
			ValueType: valueType,
		})
	}

	if err := h.repo.ReplaceCustomFields(c.Request.Context(), jobID, fields); err != nil {
		httperr.Internal(c, "failed_to_save_fields", "Failed to save custom fields.")
		return
	}

	httpresp.OK(c, fields)
}

// ======================================================
// IMPORT / EXPORT
// ======================================================

func (h *JobHandler) Import(c *gin.Context) {
	studioID := c.MustGet(middleware.ContextStudioID).(uint)
	userID := c.MustGet(middleware.ContextUserID).(uint)

	file, _, err := c.Request.FormFile("file")
	if err != nil {
		httperr.BadRequest(c, "missing_file", "CSV file is required.")
		return
	}
	defer file.Close()

	stats, err := h.importUC.Execute(c.Request.Context(), studioID, userID, file)
	if err != nil {
		mapJobError(c, err)
		return
	}

	httpresp.OK(c, stats)
}

// defaultJobColumns is the admin table's out-of-the-box layout.
var defaultJobColumns = []export.Column{
	{Key: "name", Label: "Job Name", Visible: true},
	{Key: "type", Label: "Type", Visible: true},
	{Key: "client_name", Label: "Client", Visible: true},
	{Key: "client_email", Label: "Client Email", Visible: true},
	{Key: "main_shoot_date", Label: "Shoot Date", Visible: true},
	{Key: "location", Label: "Location", Visible: false},
	{Key: "lead_source", Label: "Lead Source", Visible: false},
	{Key: "status", Label: "Status", Visible: true},
	{Key: "total_amount", Label: "Total", Visible: true},
	{Key: "paid_amount", Label: "Paid", Visible: false},
	{Key: "payment_status", Label: "Payment", Visible: false},
}

// Export renders the current view as CSV: optional ?columns= (comma list of
// keys, in display order), ?status= / ?type= filters, ?sort=column:direction.
func (h *JobHandler) Export(c *gin.Context) {
	studioID := c.MustGet(middleware.ContextStudioID).(uint)

	jobs, err := h.repo.ListJobs(c.Request.Context(), studioID)
	if err != nil {
		httperr.Internal(c, "failed_to_list_jobs", "Failed to load jobs.")
		return
	}

	statusFilter := c.Query("status")
	typeFilter := c.Query("type")

	rows := make([]export.Row, 0, len(jobs))
	for i := range jobs {
		j := &jobs[i]
		if statusFilter != "" && j.Status != statusFilter {
			continue
		}
		if typeFilter != "" && j.Type != typeFilter {
			continue
		}
		rows = append(rows, jobRow(j))
	}

	columns := selectColumns(c.Query("columns"))

	sortState := export.NewSortState("main_shoot_date", export.SortAsc)
	if s := c.Query("sort"); s != "" {
		parts := strings.SplitN(s, ":", 2)
		sortState.Column = parts[0]
		sortState.Direction = export.SortAsc
		if len(parts) == 2 && parts[1] == string(export.SortDesc) {
			sortState.Direction = export.SortDesc
		}
	}
	export.ApplySort(rows, sortState)

	csv := export.RenderCSV(columns, rows)

	c.Header("Content-Disposition", `attachment; filename="jobs.csv"`)
	c.Data(http.StatusOK, "text/csv", []byte(csv))
}

func selectColumns(param string) []export.Column {
	if param == "" {
		return defaultJobColumns
	}

	byKey := map[string]export.Column{}
	for _, col := range defaultJobColumns {
		byKey[col.Key] = col
	}

	var out []export.Column
	for _, key := range strings.Split(param, ",") {
		key = strings.TrimSpace(key)
		if col, ok := byKey[key]; ok {
			col.Visible = true
			out = append(out, col)
		}
	}

	if len(out) == 0 {
		return defaultJobColumns
	}
	return out
}

func jobRow(j *models.Job) export.Row {
	return export.Row{
		"name":            j.Name,
		"type":            j.Type,
		"client_name":     j.ClientName,
		"client_email":    j.ClientEmail,
		"main_shoot_date": j.MainShootDate,
		"location":        j.Location,
		"lead_source":     j.LeadSource,
		"status":          j.Status,
		"total_amount":    j.TotalAmount,
		"paid_amount":     j.PaidAmount,
		"payment_status":  j.PaymentStatus,
	}
}

// ======================================================
// PAYMENT LINK
// ======================================================

func (h *JobHandler) PaymentLink(c *gin.Context) {
	studioID := c.MustGet(middleware.ContextStudioID).(uint)

	if !h.payments.Enabled() {
		httperr.BadRequest(c, "payments_not_configured", "Payments are not configured.")
		return
	}

	jobID, ok := jobIDParam(c)
	if !ok {
		return
	}

	j, err := h.repo.GetJob(c.Request.Context(), studioID, jobID)
	if err != nil {
		httperr.Internal(c, "failed_to_get_job", "Failed to load job.")
		return
	}
	if j == nil {
		httperr.NotFound(c, "job_not_found", "Job not found.")
		return
	}

	link, err := h.payments.PaymentLink(c.Request.Context(), j)
	if err != nil {
		if code, ok := httperr.BusinessCode(err); ok {
			httperr.BadRequest(c, code, "Payment link could not be created.")
			return
		}
		httperr.Internal(c, "payment_link_failed", "Failed to create payment link.")
		return
	}

	httpresp.OK(c, gin.H{"payment_url": link})
}
