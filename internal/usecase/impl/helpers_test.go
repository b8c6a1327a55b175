package impl

import "bistro/internal/usecase"

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }

func int64Ptr(i int64) *int64 { return &i }

func refTo(id int64) *usecase.EntityRef {
	return &usecase.EntityRef{ID: int64Ptr(id)}
}
