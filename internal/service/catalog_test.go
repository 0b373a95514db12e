package service_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Astemirdum/lending-service/internal/errs"
	"github.com/Astemirdum/lending-service/internal/model"
	mock_repository "github.com/Astemirdum/lending-service/internal/repository/mocks"
	"github.com/Astemirdum/lending-service/internal/service"
)

func TestCatalog_ListBooks_Clamping(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name               string
		page, size         int
		wantPage, wantSize int
	}{
		{"defaults", 0, 0, 1, 1},
		{"negative page", -3, 10, 1, 10},
		{"size over cap", 1, 200, 1, 100},
		{"in range", 2, 50, 2, 50},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			repo := mock_repository.NewMockCatalogRepository(c)
			svc := service.NewCatalog(repo, zap.NewExample().Named("test"))

			repo.EXPECT().
				ListBooks(context.Background(), model.BookFilter{}, tt.wantPage, tt.wantSize).
				Return(model.ListBooks{
					Paging: model.Paging{TotalCount: 0, PageNumber: tt.wantPage, PageSize: tt.wantSize},
				}, nil)

			got, err := svc.ListBooks(context.Background(), model.BookFilter{}, tt.page, tt.size)
			require.NoError(t, err)
			require.Equal(t, tt.wantPage, got.PageNumber)
			require.Equal(t, tt.wantSize, got.PageSize)
		})
	}
}

func TestCatalog_Suggest_BlankPrefix(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	defer c.Finish()
	repo := mock_repository.NewMockCatalogRepository(c)
	svc := service.NewCatalog(repo, zap.NewExample().Named("test"))

	// no repo expectation: a blank prefix must not touch the store
	for _, prefix := range []string{"", "   ", "\t"} {
		names, err := svc.SuggestNames(context.Background(), prefix)
		require.NoError(t, err)
		require.Empty(t, names)

		authors, err := svc.SuggestAuthors(context.Background(), prefix)
		require.NoError(t, err)
		require.Empty(t, authors)
	}
}

func TestCatalog_Suggest(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	defer c.Finish()
	repo := mock_repository.NewMockCatalogRepository(c)
	svc := service.NewCatalog(repo, zap.NewExample().Named("test"))

	repo.EXPECT().
		SuggestNames(context.Background(), "go").
		Return([]string{"Go in Action", "Go in Practice"}, nil)

	names, err := svc.SuggestNames(context.Background(), "go")
	require.NoError(t, err)
	require.Equal(t, []string{"Go in Action", "Go in Practice"}, names)
}

func TestCatalog_AddBook_Duplicate(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	defer c.Finish()
	repo := mock_repository.NewMockCatalogRepository(c)
	svc := service.NewCatalog(repo, zap.NewExample().Named("test"))

	req := model.CreateBookRequest{
		Name:           "The Go Programming Language",
		Author:         "Alan A. A. Donovan",
		IssueYear:      2015,
		ISBN:           "978-0-13-419044-0",
		NumberOfPieces: 3,
	}
	repo.EXPECT().
		CreateBook(context.Background(), req).
		Return(model.Book{}, errs.ErrBookExists)

	_, err := svc.AddBook(context.Background(), req)
	require.ErrorIs(t, err, errs.ErrBookExists)
}
