package controller

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"ruralconnect/internal/infrastructure/auth"
	"ruralconnect/internal/pkg/identity/application/usecase"
	identity "ruralconnect/internal/pkg/identity/domain"
	repository "ruralconnect/internal/pkg/identity/persistence/repository/port"
)

// ListWorkersController serves the public worker directory.
type ListWorkersController struct {
	UC *usecase.SearchWorkersUseCase
}

func NewListWorkersController(uc *usecase.SearchWorkersUseCase) *ListWorkersController {
	return &ListWorkersController{UC: uc}
}

func (h *ListWorkersController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		listings, err := h.UC.Execute(ctx, usecase.SearchWorkersInput{
			Skill:    c.Query("skill"),
			Location: c.Query("location"),
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load workers"})
			return
		}

		out := make([]gin.H, 0, len(listings))
		for _, w := range listings {
			out = append(out, workerJSON(w))
		}
		c.JSON(http.StatusOK, out)
	}
}

// GetWorkerController serves a single directory entry.
type GetWorkerController struct {
	Profiles repository.ProfileRepository
}

func NewGetWorkerController(profiles repository.ProfileRepository) *GetWorkerController {
	return &GetWorkerController{Profiles: profiles}
}

func (h *GetWorkerController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		w, err := h.Profiles.GetByID(ctx, c.Param("id"))
		if err != nil {
			if errors.Is(err, identity.ErrProfileNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "worker not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load worker"})
			return
		}
		c.JSON(http.StatusOK, workerJSON(*w))
	}
}

// CreateWorkerController exposes a service listing for the caller.
type CreateWorkerController struct {
	UC *usecase.CreateWorkerProfileUseCase
}

func NewCreateWorkerController(uc *usecase.CreateWorkerProfileUseCase) *CreateWorkerController {
	return &CreateWorkerController{UC: uc}
}

type createWorkerRequest struct {
	Skill      string           `json:"skill" binding:"required"`
	Rating     float64          `json:"rating"`
	Experience string           `json:"experience"`
	Address    identity.Address `json:"address"`
}

func (h *CreateWorkerController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := auth.ClaimsFromContext(c)
		if claims == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		var req createWorkerRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		profile, err := h.UC.Execute(ctx, usecase.CreateWorkerProfileInput{
			AccountID:  claims.AccountID,
			Skill:      req.Skill,
			Rating:     req.Rating,
			Experience: req.Experience,
			Address:    req.Address,
		})
		if err != nil {
			status := http.StatusBadRequest
			if errors.Is(err, usecase.ErrPersistence) {
				status = http.StatusInternalServerError
			}
			c.JSON(status, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"id":         profile.ID,
			"accountId":  profile.AccountID,
			"skill":      profile.Skill,
			"rating":     profile.Rating,
			"experience": profile.Experience,
			"address":    profile.Address,
		})
	}
}

func workerJSON(w identity.WorkerListing) gin.H {
	return gin.H{
		"id":         w.ID,
		"accountId":  w.AccountID,
		"name":       w.Name,
		"email":      w.Email,
		"skill":      w.Skill,
		"rating":     w.Rating,
		"experience": w.Experience,
		"address":    w.Address,
	}
}
