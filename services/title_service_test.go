package services

import (
	"testing"
	"time"

	"github.com/reviewhub-api/apperrors"
	"github.com/reviewhub-api/dto"
	"github.com/reviewhub-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestYearValidation(t *testing.T) {
	setupTestDB(t)
	admin := createUser(t, "root", models.RoleAdmin)
	createCategory(t, "Books", "books")
	titleService := NewTitleService()

	currentYear := time.Now().Year()
	cases := []struct {
		year  int
		valid bool
	}{
		{currentYear, true},
		{currentYear + 1, false},
		{-3400, true},
		{-3401, false},
	}
	for _, tc := range cases {
		_, err := titleService.CreateTitle(&admin, dto.TitleRequest{
			Name:     "t",
			Year:     intPtr(tc.year),
			Category: "books",
		})
		if tc.valid {
			assert.NoError(t, err, "year %d", tc.year)
		} else {
			assert.ErrorIs(t, err, apperrors.ErrValidation, "year %d", tc.year)
		}
	}
}

func TestTitleWritePermissions(t *testing.T) {
	setupTestDB(t)
	alice := createUser(t, "alice", models.RoleUser)
	mod := createUser(t, "mod", models.RoleModerator)
	super := createSuperuser(t, "super")
	createCategory(t, "Books", "books")
	titleService := NewTitleService()

	req := dto.TitleRequest{Name: "t", Year: intPtr(2020), Category: "books"}

	_, err := titleService.CreateTitle(&alice, req)
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	// Moderators moderate content, they do not manage the catalog
	_, err = titleService.CreateTitle(&mod, req)
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	_, err = titleService.CreateTitle(nil, req)
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	_, err = titleService.CreateTitle(&super, req)
	assert.NoError(t, err)
}

func TestTitleExpandedRead(t *testing.T) {
	setupTestDB(t)
	admin := createUser(t, "root", models.RoleAdmin)
	createCategory(t, "Books", "books")
	createGenre(t, "Fantasy", "fantasy")
	createGenre(t, "Sci-Fi", "scifi")
	titleService := NewTitleService()

	created, err := titleService.CreateTitle(&admin, dto.TitleRequest{
		Name:     "Dune",
		Year:     intPtr(1965),
		Category: "books",
		Genre:    []string{"fantasy", "scifi"},
	})
	require.NoError(t, err)

	got, err := titleService.GetTitle(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Books", got.Category.Name)
	assert.Equal(t, "books", got.Category.Slug)
	require.Len(t, got.Genre, 2)
	slugs := []string{got.Genre[0].Slug, got.Genre[1].Slug}
	assert.ElementsMatch(t, []string{"fantasy", "scifi"}, slugs)
	assert.Nil(t, got.Rating)
}

func TestTitleUnknownSlugs(t *testing.T) {
	setupTestDB(t)
	admin := createUser(t, "root", models.RoleAdmin)
	createCategory(t, "Books", "books")
	titleService := NewTitleService()

	_, err := titleService.CreateTitle(&admin, dto.TitleRequest{
		Name: "t", Year: intPtr(2020), Category: "missing",
	})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = titleService.CreateTitle(&admin, dto.TitleRequest{
		Name: "t", Year: intPtr(2020), Category: "books", Genre: []string{"nope"},
	})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestTitleFilters(t *testing.T) {
	setupTestDB(t)
	books := createCategory(t, "Books", "books")
	movies := createCategory(t, "Movies", "movies")
	fantasy := createGenre(t, "Fantasy", "fantasy")
	scifi := createGenre(t, "Sci-Fi", "scifi")

	createTitle(t, "Dune", 1965, books, scifi)
	createTitle(t, "Dune", 2021, movies, scifi)
	createTitle(t, "The Hobbit", 1937, books, fantasy)

	titleService := NewTitleService()
	page := func(f dto.TitleFilter) dto.TitleFilter {
		f.Page = 1
		f.PageSize = 10
		return f
	}

	got, total, err := titleService.ListTitles(page(dto.TitleFilter{Category: "books"}))
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, got, 2)

	got, _, err = titleService.ListTitles(page(dto.TitleFilter{Genre: "scifi"}))
	require.NoError(t, err)
	assert.Len(t, got, 2)

	// Substring match is case-insensitive
	got, _, err = titleService.ListTitles(page(dto.TitleFilter{Name: "dUn"}))
	require.NoError(t, err)
	assert.Len(t, got, 2)

	got, _, err = titleService.ListTitles(page(dto.TitleFilter{Year: intPtr(1937)}))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "The Hobbit", got[0].Name)

	// Filters combine with AND
	got, _, err = titleService.ListTitles(page(dto.TitleFilter{
		Category: "books",
		Genre:    "scifi",
		Name:     "dune",
		Year:     intPtr(1965),
	}))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 1965, got[0].Year)

	got, _, err = titleService.ListTitles(page(dto.TitleFilter{
		Category: "movies",
		Year:     intPtr(1965),
	}))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestTitleListRatings(t *testing.T) {
	setupTestDB(t)
	alice := createUser(t, "alice", models.RoleUser)
	bob := createUser(t, "bob", models.RoleUser)
	books := createCategory(t, "Books", "books")
	rated := createTitle(t, "Rated", 2020, books)
	createTitle(t, "Unrated", 2020, books)

	reviewService := NewReviewService()
	_, err := reviewService.CreateReview(&alice, rated.ID, dto.ReviewRequest{Text: "a", Score: 8})
	require.NoError(t, err)
	_, err = reviewService.CreateReview(&bob, rated.ID, dto.ReviewRequest{Text: "b", Score: 4})
	require.NoError(t, err)

	got, _, err := NewTitleService().ListTitles(dto.TitleFilter{Page: 1, PageSize: 10})
	require.NoError(t, err)
	require.Len(t, got, 2)

	byName := map[string]dto.TitleResponse{}
	for _, title := range got {
		byName[title.Name] = title
	}
	require.NotNil(t, byName["Rated"].Rating)
	assert.Equal(t, 6, *byName["Rated"].Rating)
	assert.Nil(t, byName["Unrated"].Rating)
}

func TestTitlePartialUpdate(t *testing.T) {
	setupTestDB(t)
	admin := createUser(t, "root", models.RoleAdmin)
	createCategory(t, "Books", "books")
	createGenre(t, "Fantasy", "fantasy")
	createGenre(t, "Sci-Fi", "scifi")
	titleService := NewTitleService()

	created, err := titleService.CreateTitle(&admin, dto.TitleRequest{
		Name: "Dune", Year: intPtr(1965), Category: "books", Genre: []string{"fantasy"},
	})
	require.NoError(t, err)

	newGenres := []string{"scifi"}
	updated, err := titleService.UpdateTitle(&admin, created.ID, dto.TitleUpdateRequest{
		Genre: &newGenres,
	})
	require.NoError(t, err)
	// Untouched fields survive, the genre set is replaced wholesale
	assert.Equal(t, "Dune", updated.Name)
	assert.Equal(t, 1965, updated.Year)
	require.Len(t, updated.Genre, 1)
	assert.Equal(t, "scifi", updated.Genre[0].Slug)

	badYear := time.Now().Year() + 1
	_, err = titleService.UpdateTitle(&admin, created.ID, dto.TitleUpdateRequest{Year: &badYear})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestTitleUpdateRejectedWholesale(t *testing.T) {
	setupTestDB(t)
	admin := createUser(t, "root", models.RoleAdmin)
	books := createCategory(t, "Books", "books")
	fantasy := createGenre(t, "Fantasy", "fantasy")
	title := createTitle(t, "Dune", 1965, books, fantasy)
	titleService := NewTitleService()

	newName := "Renamed"
	badGenres := []string{"missing"}
	_, err := titleService.UpdateTitle(&admin, title.ID, dto.TitleUpdateRequest{
		Name:  &newName,
		Genre: &badGenres,
	})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	// The rejected update must not leave partial state behind
	got, err := titleService.GetTitle(title.ID)
	require.NoError(t, err)
	assert.Equal(t, "Dune", got.Name)
	require.Len(t, got.Genre, 1)
	assert.Equal(t, "fantasy", got.Genre[0].Slug)
}
