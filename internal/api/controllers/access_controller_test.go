package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"inzider/internal/models/db_models"
	"inzider/internal/services"
	"inzider/pkg/authz"
	"inzider/pkg/utils"
)

func setupAccessRouter(accessSvc *MockAccessService, grantSvc *MockPackageAccessService, identity *authz.Identity) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	controller := NewAccessController(accessSvc, grantSvc)

	withIdentity := func(h gin.HandlerFunc) gin.HandlerFunc {
		return func(c *gin.Context) {
			if identity != nil {
				c.Set("identity", *identity)
			}
			h(c)
		}
	}

	r.POST("/access/check", withIdentity(controller.Check))
	r.POST("/access/issue-test", withIdentity(controller.IssueTest))
	r.POST("/access/verify", controller.Verify)
	return r
}

func TestAccessController_Check(t *testing.T) {
	viewerID := uuid.New()
	contentID := uuid.New()
	identity := &authz.Identity{AccountID: viewerID, Kind: authz.KindUser, Authenticated: true}

	accessSvc := &MockAccessService{}
	accessSvc.On("MayView", mock.Anything, viewerID, contentID, db_models.ContentTypeTrip).
		Return(services.AccessDecision{Allowed: true, Reason: services.AccessReasonPurchase})

	router := setupAccessRouter(accessSvc, &MockPackageAccessService{}, identity)
	body := fmt.Sprintf(`{"contentId":%q,"contentType":"trip"}`, contentID)
	req := httptest.NewRequest("POST", "/access/check", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			Allowed bool   `json:"allowed"`
			Reason  string `json:"reason"`
		} `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Data.Allowed)
	assert.Equal(t, "purchase", resp.Data.Reason)
	accessSvc.AssertExpectations(t)
}

func TestAccessController_Verify_UniformFailureShape(t *testing.T) {
	packageID := uuid.New()

	// The service collapses every failure mode into the same sentinel;
	// the boundary must not add anything that tells them apart.
	grantSvc := &MockPackageAccessService{}
	grantSvc.On("Verify", mock.Anything, "buyer@example.com", "deadbeef", packageID).
		Return(nil, utils.ErrAccessDenied)

	router := setupAccessRouter(&MockAccessService{}, grantSvc, nil)

	body := fmt.Sprintf(`{"email":"buyer@example.com","accessKey":"deadbeef","packageId":%q}`, packageID)
	req := httptest.NewRequest("POST", "/access/verify", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid or expired access")
	// No field-level detail leaks through.
	assert.NotContains(t, w.Body.String(), "email")
	assert.NotContains(t, w.Body.String(), "key")
	grantSvc.AssertExpectations(t)
}

func TestAccessController_Verify_Success(t *testing.T) {
	packageID := uuid.New()
	creatorID := uuid.New()
	lastAccessed := int64(1_700_000_000)

	grantSvc := &MockPackageAccessService{}
	grantSvc.On("Verify", mock.Anything, "buyer@example.com", "deadbeef", packageID).
		Return(&db_models.PackageAccess{
			Email:          "buyer@example.com",
			AccessKey:      "deadbeef",
			PackageID:      packageID,
			PackageType:    db_models.ContentTypeGoTo,
			CreatorID:      creatorID,
			IsActive:       true,
			LastAccessedAt: &lastAccessed,
		}, nil)

	router := setupAccessRouter(&MockAccessService{}, grantSvc, nil)
	body := fmt.Sprintf(`{"email":"buyer@example.com","accessKey":"deadbeef","packageId":%q}`, packageID)
	req := httptest.NewRequest("POST", "/access/verify", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), packageID.String())
	assert.Contains(t, w.Body.String(), "goto")
	// The raw key is not echoed back.
	assert.NotContains(t, w.Body.String(), "deadbeef")
	grantSvc.AssertExpectations(t)
}

func TestAccessController_IssueTest(t *testing.T) {
	packageID := uuid.New()
	creatorID := uuid.New()
	identity := &authz.Identity{AccountID: creatorID, Kind: authz.KindCreator, Authenticated: true}

	grantSvc := &MockPackageAccessService{}
	grantSvc.On("Issue", mock.Anything, mock.MatchedBy(func(in services.IssueGrantInput) bool {
		return in.Email == "buyer@example.com" && in.PackageID == packageID && in.TTL == 0
	})).Return(&db_models.PackageAccess{
		Email:       "buyer@example.com",
		AccessKey:   "0123456789abcdef0123456789abcdef",
		PackageID:   packageID,
		PackageType: db_models.ContentTypeGoTo,
		CreatorID:   creatorID,
		IsActive:    true,
	}, nil)

	router := setupAccessRouter(&MockAccessService{}, grantSvc, identity)
	body := fmt.Sprintf(`{"email":"buyer@example.com","packageId":%q,"packageType":"goto","creatorId":%q}`, packageID, creatorID)
	req := httptest.NewRequest("POST", "/access/issue-test", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "0123456789abcdef0123456789abcdef")
	grantSvc.AssertExpectations(t)
}
