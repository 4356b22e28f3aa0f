package api

import (
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/CreditPe/CreditPe-Backend/api/apistrings"
	models "github.com/CreditPe/CreditPe-Backend/api/models"
	basemodels "github.com/CreditPe/CreditPe-Backend/models"
	application_service "github.com/CreditPe/CreditPe-Backend/services/application"
	"github.com/CreditPe/CreditPe-Backend/services/flow"
	"github.com/CreditPe/CreditPe-Backend/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// maxDocumentSize caps identity-proof uploads at 5MB.
const maxDocumentSize = 5 << 20

type Documents struct {
	server *Server
}

func (d Documents) router(server *Server) {
	d.server = server

	serverGroupV1 := server.router.Group("/api/v1/documents", AuthenticatedMiddleware())
	serverGroupV1.GET("status", d.documentStatus)
	serverGroupV1.POST("complete", d.completeDocuments)
	serverGroupV1.POST(":type", d.uploadDocument)
}

// currentApplicationID resolves the session's current-application slot for
// an authenticated identity.
func (s *Server) currentApplicationID(ctx *gin.Context, identityID string) (uuid.UUID, error) {
	stored, err := s.sessions.ApplicationID(ctx, identityID)
	if err != nil {
		return uuid.Nil, err
	}
	if stored == "" {
		return uuid.Nil, application_service.ErrNoCurrentApplication
	}
	return uuid.Parse(stored)
}

func (d *Documents) uploadDocument(ctx *gin.Context) {
	identity, err := utils.GetActiveIdentity(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, basemodels.NewError(apistrings.IdentityNotFound))
		return
	}

	docType := strings.ToLower(ctx.Param("type"))
	known := false
	for _, required := range application_service.RequiredDocumentTypes {
		if docType == required {
			known = true
			break
		}
	}
	if !known {
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.InvalidDocumentType))
		return
	}

	if err := d.server.flow.Require(ctx, identity.IdentityID, flow.StageDocuments); err != nil {
		ctx.JSON(http.StatusConflict, basemodels.NewError(apistrings.StageError))
		return
	}

	appID, err := d.server.currentApplicationID(ctx, identity.IdentityID)
	if err != nil {
		if err == application_service.ErrNoCurrentApplication {
			ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.NoApplication))
			return
		}
		d.server.logger.Error(err.Error())
		ctx.JSON(http.StatusInternalServerError, basemodels.NewError(apistrings.ServerError))
		return
	}

	file, header, err := ctx.Request.FormFile("document")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.InvalidDocumentFile))
		return
	}
	defer file.Close()

	if header.Size > maxDocumentSize {
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.DocumentTooLarge))
		return
	}

	contentType := header.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.InvalidDocumentFile))
		return
	}

	body, err := io.ReadAll(io.LimitReader(file, maxDocumentSize+1))
	if err != nil {
		d.server.logger.Error(err.Error())
		ctx.JSON(http.StatusInternalServerError, basemodels.NewError(apistrings.ServerError))
		return
	}
	if len(body) > maxDocumentSize {
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.DocumentTooLarge))
		return
	}

	ext := filepath.Ext(header.Filename)
	key := fmt.Sprintf("%s/%s_%d%s", identity.IdentityID, docType, time.Now().UnixMilli(), ext)

	if err := d.server.storage.Upload(ctx, key, body, contentType); err != nil {
		d.server.logger.Error(fmt.Sprintf("document upload failed: %v", err))
		ctx.JSON(http.StatusBadGateway, basemodels.NewError("could not store document, please try again"))
		return
	}

	doc, err := d.server.apps.SaveDocument(ctx, appID, docType, key)
	if err != nil {
		if err == application_service.ErrApplicationNotFound {
			ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.NoApplication))
			return
		}
		d.server.logger.Error(err.Error())
		ctx.JSON(http.StatusInternalServerError, basemodels.NewError(apistrings.ServerError))
		return
	}

	ctx.JSON(http.StatusOK, basemodels.NewSuccess("document uploaded successfully", models.ToDocumentResponse(doc)))
}

func (d *Documents) documentStatus(ctx *gin.Context) {
	identity, err := utils.GetActiveIdentity(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, basemodels.NewError(apistrings.IdentityNotFound))
		return
	}

	appID, err := d.server.currentApplicationID(ctx, identity.IdentityID)
	if err != nil {
		if err == application_service.ErrNoCurrentApplication {
			ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.NoApplication))
			return
		}
		d.server.logger.Error(err.Error())
		ctx.JSON(http.StatusInternalServerError, basemodels.NewError(apistrings.ServerError))
		return
	}

	uploaded, complete, err := d.server.apps.DocumentStatus(ctx, appID)
	if err != nil {
		d.server.logger.Error(err.Error())
		ctx.JSON(http.StatusInternalServerError, basemodels.NewError(apistrings.ServerError))
		return
	}

	ctx.JSON(http.StatusOK, basemodels.NewSuccess("document status", models.DocumentStatusResponse{
		Uploaded: uploaded,
		Complete: complete,
	}))
}

// completeDocuments gates the move to eligibility on the full required set
// being present.
func (d *Documents) completeDocuments(ctx *gin.Context) {
	identity, err := utils.GetActiveIdentity(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, basemodels.NewError(apistrings.IdentityNotFound))
		return
	}

	if err := d.server.flow.Require(ctx, identity.IdentityID, flow.StageDocuments); err != nil {
		ctx.JSON(http.StatusConflict, basemodels.NewError(apistrings.StageError))
		return
	}

	appID, err := d.server.currentApplicationID(ctx, identity.IdentityID)
	if err != nil {
		if err == application_service.ErrNoCurrentApplication {
			ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.NoApplication))
			return
		}
		d.server.logger.Error(err.Error())
		ctx.JSON(http.StatusInternalServerError, basemodels.NewError(apistrings.ServerError))
		return
	}

	_, complete, err := d.server.apps.DocumentStatus(ctx, appID)
	if err != nil {
		d.server.logger.Error(err.Error())
		ctx.JSON(http.StatusInternalServerError, basemodels.NewError(apistrings.ServerError))
		return
	}

	if !complete {
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.DocumentsMissing))
		return
	}

	if err := d.server.flow.Advance(ctx, identity.IdentityID, flow.StageEligibility); err != nil {
		ctx.JSON(http.StatusConflict, basemodels.NewError(apistrings.StageError))
		return
	}

	ctx.JSON(http.StatusOK, basemodels.NewSuccess("documents complete, eligibility check unlocked", nil))
}
