package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/inventory-tracker/backend/internal/application/usecase/source"
	domainerror "github.com/inventory-tracker/backend/internal/domain/error"
	"github.com/inventory-tracker/backend/internal/integration/entrypoint/dto"
)

// SourceController handles source endpoints.
type SourceController struct {
	listUseCase   *source.ListSourcesUseCase
	createUseCase *source.CreateSourceUseCase
}

// NewSourceController creates a new source controller instance.
func NewSourceController(
	listUseCase *source.ListSourcesUseCase,
	createUseCase *source.CreateSourceUseCase,
) *SourceController {
	return &SourceController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
	}
}

// List handles GET /sources requests.
func (c *SourceController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve sources",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSourceListResponse(output.Sources))
}

// Create handles POST /sources requests.
func (c *SourceController) Create(ctx *gin.Context) {
	var req dto.CreateSourceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingSourceFields),
		})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), source.CreateSourceInput{
		Name: req.Name,
	})
	if err != nil {
		var srcErr *domainerror.SourceError
		if errors.As(err, &srcErr) {
			ctx.JSON(c.getStatusCodeForSourceError(srcErr.Code), dto.ErrorResponse{
				Error: srcErr.Message,
				Code:  string(srcErr.Code),
			})
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
		})
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToSourceResponse(output.Source))
}

func (c *SourceController) getStatusCodeForSourceError(code domainerror.SourceErrorCode) int {
	switch code {
	case domainerror.ErrCodeSourceNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeSourceNameExists:
		return http.StatusConflict
	case domainerror.ErrCodeSourceNameTooLong,
		domainerror.ErrCodeSourceNameRequired,
		domainerror.ErrCodeMissingSourceFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
