package handler

import (
	"github.com/inkwell/content-system/internal/core/domain"
	"github.com/inkwell/content-system/internal/core/ports"
)

func toPostResponse(p *domain.Post) postResponse {
	return postResponse{
		ID:        p.ID,
		Title:     p.Title,
		Body:      p.Body,
		UserID:    p.UserID,
		CreatedAt: formatTime(p.CreatedAt),
	}
}

func toPostDetailResponse(p *domain.Post) postDetailResponse {
	resp := postDetailResponse{postResponse: toPostResponse(p)}
	if p.User != nil {
		resp.Author = &authorResponse{
			ID:    p.User.ID,
			Name:  p.User.Name,
			Email: p.User.Email,
		}
	}
	return resp
}

func toListPostsResponse(r *ports.ListPostsResult) listPostsResponse {
	items := make([]postResponse, len(r.Items))
	for i, p := range r.Items {
		items[i] = toPostResponse(p)
	}
	return listPostsResponse{
		Items: items,
		Pagination: paginationResponse{
			Total:      r.Total,
			Page:       r.Page,
			Limit:      r.Limit,
			TotalPages: r.TotalPages,
		},
	}
}
