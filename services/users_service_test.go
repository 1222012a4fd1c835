package services_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/cppla/userboard/models"
	"github.com/cppla/userboard/services"
	"github.com/cppla/userboard/utils"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Discard})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Post{}); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}
	return db
}

func newServices(t *testing.T) (*services.UsersService, *services.PostsService) {
	t.Helper()
	db := newTestDB(t)
	posts := services.NewPostsService(db)
	return services.NewUsersService(db, posts), posts
}

func TestSaveAssignsFreshIDs(t *testing.T) {
	usersSvc, _ := newServices(t)

	clientUserID := uuid.NewString()
	clientPostID := uuid.NewString()
	user := &models.User{
		ID:       clientUserID,
		Email:    "test@email.com",
		Password: "test password",
		Posts: []models.Post{
			{ID: clientPostID, Title: "q", Message: "w"},
			{Title: "e", Message: "r"},
		},
	}

	saved, err := usersSvc.Save(user)
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if saved.ID == clientUserID {
		t.Error("client-supplied user id was not replaced")
	}
	if _, err := uuid.Parse(saved.ID); err != nil {
		t.Errorf("user id is not a uuid: %q", saved.ID)
	}
	for _, p := range saved.Posts {
		if p.ID == clientPostID {
			t.Error("client-supplied post id was not replaced")
		}
		if _, err := uuid.Parse(p.ID); err != nil {
			t.Errorf("post id is not a uuid: %q", p.ID)
		}
		if p.UserID != saved.ID {
			t.Errorf("post owner = %q, want %q", p.UserID, saved.ID)
		}
	}

	stored, err := usersSvc.GetByID(saved.ID)
	if err != nil {
		t.Fatalf("get saved user: %v", err)
	}
	if len(stored.Posts) != 2 {
		t.Fatalf("stored posts = %d, want 2", len(stored.Posts))
	}
	if !utils.CheckPassword(stored.Password, "test password") {
		t.Error("stored password is not the bcrypt hash of the input")
	}
}

func TestUpdateMergesAndKeepsID(t *testing.T) {
	usersSvc, _ := newServices(t)

	saved, err := usersSvc.Save(&models.User{Email: "old@email.com", Password: "pw"})
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	oldHash := saved.Password

	updated, err := usersSvc.Update(saved.ID, &models.User{Email: "new@email.com"})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.ID != saved.ID {
		t.Errorf("update changed the id: %q -> %q", saved.ID, updated.ID)
	}
	if updated.Email != "new@email.com" {
		t.Errorf("email = %q, want new@email.com", updated.Email)
	}
	if updated.Password != oldHash {
		t.Error("password changed although it was not supplied")
	}
}

func TestUpdateAddsNestedPostsUnderFreshIDs(t *testing.T) {
	usersSvc, postsSvc := newServices(t)

	saved, err := usersSvc.Save(&models.User{Email: "a@b.c", Password: "pw"})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	updated, err := usersSvc.Update(saved.ID, &models.User{
		Posts: []models.Post{{ID: uuid.NewString(), Title: "t", Message: "m"}},
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if len(updated.Posts) != 1 {
		t.Fatalf("posts = %d, want 1", len(updated.Posts))
	}

	posts, err := postsSvc.FindByUserID(saved.ID)
	if err != nil {
		t.Fatalf("find posts: %v", err)
	}
	if len(posts) != 1 || posts[0].Title != "t" {
		t.Fatalf("stored posts = %+v, want one titled t", posts)
	}
}

func TestUpdateNotFound(t *testing.T) {
	usersSvc, _ := newServices(t)
	if _, err := usersSvc.Update(uuid.NewString(), &models.User{Email: "x@y.z"}); !errors.Is(err, services.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestFindByIDSentinel(t *testing.T) {
	usersSvc, _ := newServices(t)
	user, err := usersSvc.FindByID(uuid.NewString())
	if err != nil {
		t.Fatalf("err = %v, want nil", err)
	}
	if user != nil {
		t.Fatalf("user = %+v, want nil", user)
	}
}

func TestGetByIDNotFound(t *testing.T) {
	usersSvc, _ := newServices(t)
	if _, err := usersSvc.GetByID(uuid.NewString()); !errors.Is(err, services.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestDeleteCascadesToPosts(t *testing.T) {
	usersSvc, postsSvc := newServices(t)

	saved, err := usersSvc.Save(&models.User{
		Email:    "a@b.c",
		Password: "pw",
		Posts:    []models.Post{{Title: "q", Message: "w"}, {Title: "e", Message: "r"}},
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	postID := saved.Posts[0].ID

	deleted, err := usersSvc.DeleteByID(saved.ID)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if deleted.ID != saved.ID {
		t.Errorf("deleted id = %q, want %q", deleted.ID, saved.ID)
	}

	if u, err := usersSvc.FindByID(saved.ID); err != nil || u != nil {
		t.Fatalf("user still present after delete: %+v, %v", u, err)
	}
	if _, err := postsSvc.GetByID(postID); !errors.Is(err, services.ErrNotFound) {
		t.Fatalf("post survived user delete: err = %v", err)
	}
	posts, err := postsSvc.FindByUserID(saved.ID)
	if err != nil {
		t.Fatalf("find posts: %v", err)
	}
	if len(posts) != 0 {
		t.Fatalf("posts = %d, want 0", len(posts))
	}
}

func TestDeleteByIDNotFound(t *testing.T) {
	usersSvc, _ := newServices(t)
	if _, err := usersSvc.DeleteByID(uuid.NewString()); !errors.Is(err, services.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestGetEmailAndPostTitles(t *testing.T) {
	usersSvc, _ := newServices(t)

	saved, err := usersSvc.Save(&models.User{
		Email:    "1",
		Password: "1",
		Posts: []models.Post{
			{Title: "q", Message: "w"},
			{Title: "e", Message: "r"},
			{Title: "t", Message: "y"},
		},
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	out, err := usersSvc.GetEmailAndPostTitles(saved.ID)
	if err != nil {
		t.Fatalf("titles: %v", err)
	}
	if out.Email != "1" {
		t.Errorf("email = %q, want 1", out.Email)
	}
	want := []string{"q", "e", "t"}
	if len(out.Titles) != len(want) {
		t.Fatalf("titles = %v, want %v", out.Titles, want)
	}
	for i, title := range want {
		if out.Titles[i] != title {
			t.Errorf("titles[%d] = %q, want %q", i, out.Titles[i], title)
		}
	}
}

func TestGetEmailAndPostTitlesNotFound(t *testing.T) {
	usersSvc, _ := newServices(t)
	if _, err := usersSvc.GetEmailAndPostTitles(uuid.NewString()); !errors.Is(err, services.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}
