package service

import (
	"context"
	"errors"
	"testing"

	"friendconnect/internal/models"
)

func newTagFixture() (*PersonalizationService, *memUserRepo, *memTagRepo) {
	users := newMemUserRepo()
	tags := newMemTagRepo()
	return NewPersonalizationService(tags, users), users, tags
}

func TestAddTagAndList(t *testing.T) {
	t.Parallel()

	svc, users, _ := newTagFixture()
	ctx := context.Background()
	alice := users.addUser("Alice", "alice@example.com")

	if err := svc.AddTag(ctx, alice.ID, models.TagKindHobby, "  chess  "); err != nil {
		t.Fatalf("add hobby: %v", err)
	}
	if err := svc.AddTag(ctx, alice.ID, models.TagKindInterest, "astronomy"); err != nil {
		t.Fatalf("add interest: %v", err)
	}

	hobbies, interests, err := svc.ListTags(ctx, alice.ID)
	if err != nil {
		t.Fatalf("list tags: %v", err)
	}
	if len(hobbies) != 1 || hobbies[0] != "chess" {
		t.Fatalf("expected trimmed hobby [chess], got %+v", hobbies)
	}
	if len(interests) != 1 || interests[0] != "astronomy" {
		t.Fatalf("expected [astronomy], got %+v", interests)
	}
}

func TestAddTagEmptyValue(t *testing.T) {
	t.Parallel()

	svc, users, _ := newTagFixture()
	alice := users.addUser("Alice", "alice@example.com")

	err := svc.AddTag(context.Background(), alice.ID, models.TagKindHobby, "   ")
	var appErr *models.AppError
	if !errors.As(err, &appErr) || appErr.Code != "VALIDATION_ERROR" {
		t.Fatalf("expected VALIDATION_ERROR, got %v", err)
	}
}

func TestAddTagDuplicatesAllowed(t *testing.T) {
	t.Parallel()

	svc, users, _ := newTagFixture()
	ctx := context.Background()
	alice := users.addUser("Alice", "alice@example.com")

	for i := 0; i < 2; i++ {
		if err := svc.AddTag(ctx, alice.ID, models.TagKindHobby, "chess"); err != nil {
			t.Fatalf("add %d: %v", i, err)
		}
	}

	hobbies, _, err := svc.ListTags(ctx, alice.ID)
	if err != nil {
		t.Fatalf("list tags: %v", err)
	}
	if len(hobbies) != 2 {
		t.Fatalf("expected duplicate rows kept, got %d", len(hobbies))
	}
}

func TestRemoveTagScopedToOwner(t *testing.T) {
	t.Parallel()

	svc, users, _ := newTagFixture()
	ctx := context.Background()
	alice := users.addUser("Alice", "alice@example.com")
	bob := users.addUser("Bob", "bob@example.com")

	if err := svc.AddTag(ctx, alice.ID, models.TagKindHobby, "chess"); err != nil {
		t.Fatalf("add alice: %v", err)
	}
	if err := svc.AddTag(ctx, bob.ID, models.TagKindHobby, "chess"); err != nil {
		t.Fatalf("add bob: %v", err)
	}

	if err := svc.RemoveTag(ctx, alice.ID, models.TagKindHobby, "chess"); err != nil {
		t.Fatalf("remove: %v", err)
	}

	aliceHobbies, _, err := svc.ListTags(ctx, alice.ID)
	if err != nil {
		t.Fatalf("list alice: %v", err)
	}
	if len(aliceHobbies) != 0 {
		t.Fatalf("expected alice's hobby removed, got %+v", aliceHobbies)
	}

	bobHobbies, _, err := svc.ListTags(ctx, bob.ID)
	if err != nil {
		t.Fatalf("list bob: %v", err)
	}
	if len(bobHobbies) != 1 {
		t.Fatalf("bob's identical tag must survive, got %+v", bobHobbies)
	}
}

func TestRemoveTagMissing(t *testing.T) {
	t.Parallel()

	svc, users, _ := newTagFixture()
	alice := users.addUser("Alice", "alice@example.com")

	err := svc.RemoveTag(context.Background(), alice.ID, models.TagKindHobby, "chess")
	var appErr *models.AppError
	if !errors.As(err, &appErr) || appErr.Code != "NOT_FOUND" {
		t.Fatalf("expected NOT_FOUND, got %v", err)
	}
	if appErr.Message != "No such hobby exist" {
		t.Fatalf("unexpected message %q", appErr.Message)
	}
}
