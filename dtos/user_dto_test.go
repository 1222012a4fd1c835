package dtos_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/cppla/userboard/dtos"
	"github.com/cppla/userboard/models"
)

func TestNewUserOutStripsPassword(t *testing.T) {
	out := dtos.NewUserOut(models.User{
		ID:       "id-1",
		Email:    "a@b.c",
		Password: "secret-hash",
		Posts:    []models.Post{{ID: "p-1", Title: "q", Message: "w", UserID: "id-1"}},
	})

	b, err := json.Marshal(out)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(b), "secret-hash") || strings.Contains(string(b), "password") {
		t.Fatalf("serialized user leaks the password: %s", b)
	}
	if !strings.Contains(string(b), `"email":"a@b.c"`) {
		t.Errorf("serialized user misses email: %s", b)
	}
}

func TestNewPostOutsEmptySliceNotNull(t *testing.T) {
	b, err := json.Marshal(dtos.NewPostOuts(nil))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != "[]" {
		t.Fatalf("empty projection = %s, want []", b)
	}
}

func TestUserInToModelCarriesNestedPosts(t *testing.T) {
	in := dtos.UserIn{
		Email:    "a@b.c",
		Password: "pw",
		Posts: []dtos.PostIn{
			{Title: "q", Message: "w"},
			{Title: "e", Message: "r"},
		},
	}
	user := in.ToModel()
	if user.Email != "a@b.c" || user.Password != "pw" {
		t.Fatalf("user = %+v", user)
	}
	if len(user.Posts) != 2 || user.Posts[0].Title != "q" || user.Posts[1].Message != "r" {
		t.Fatalf("posts = %+v", user.Posts)
	}
}
