package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mikiasgoitom/newsdesk/internal/handler/http/dto"
	usecasecontract "github.com/mikiasgoitom/newsdesk/internal/usecase/contract"
)

// CommunityHandler serves communities and their posts.
type CommunityHandler struct {
	communityUsecase usecasecontract.ICommunityUseCase
}

func NewCommunityHandler(communityUsecase usecasecontract.ICommunityUseCase) *CommunityHandler {
	return &CommunityHandler{communityUsecase: communityUsecase}
}

func (h *CommunityHandler) CreateCommunity(c *gin.Context) {
	var req dto.CreateCommunityRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	community, err := h.communityUsecase.CreateCommunity(c.Request.Context(), req.ToInput())
	if err != nil {
		HandleError(c, err, "Community")
		return
	}
	SuccessHandler(c, http.StatusCreated, community)
}

func (h *CommunityHandler) GetCommunities(c *gin.Context) {
	communities, err := h.communityUsecase.GetCommunities(c.Request.Context())
	if err != nil {
		HandleError(c, err, "Community")
		return
	}
	SuccessHandler(c, http.StatusOK, communities)
}

func (h *CommunityHandler) UpdateCommunityStatus(c *gin.Context) {
	var req dto.StatusRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	community, err := h.communityUsecase.UpdateCommunityStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		HandleError(c, err, "Community")
		return
	}
	SuccessHandler(c, http.StatusOK, community)
}

func (h *CommunityHandler) DeleteCommunity(c *gin.Context) {
	if err := h.communityUsecase.DeleteCommunity(c.Request.Context(), c.Param("id")); err != nil {
		HandleError(c, err, "Community")
		return
	}
	MessageHandler(c, http.StatusOK, "Community deleted")
}

func (h *CommunityHandler) AddMember(c *gin.Context) {
	var req dto.MemberRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	community, err := h.communityUsecase.AddMember(c.Request.Context(), c.Param("id"), req.UserID)
	if err != nil {
		HandleError(c, err, "Community or user")
		return
	}
	SuccessHandler(c, http.StatusOK, community)
}

func (h *CommunityHandler) RemoveMember(c *gin.Context) {
	community, err := h.communityUsecase.RemoveMember(c.Request.Context(), c.Param("id"), c.Param("userId"))
	if err != nil {
		HandleError(c, err, "Community")
		return
	}
	SuccessHandler(c, http.StatusOK, community)
}

func (h *CommunityHandler) CreatePost(c *gin.Context) {
	var req dto.CreatePostRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	post, err := h.communityUsecase.CreatePost(c.Request.Context(), req.ToInput())
	if err != nil {
		HandleError(c, err, "Post")
		return
	}
	SuccessHandler(c, http.StatusCreated, post)
}

func (h *CommunityHandler) GetPosts(c *gin.Context) {
	posts, err := h.communityUsecase.GetPosts(c.Request.Context())
	if err != nil {
		HandleError(c, err, "Post")
		return
	}
	SuccessHandler(c, http.StatusOK, posts)
}
