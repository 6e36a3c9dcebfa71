package service

import (
	"context"
	"strings"

	"friendconnect/internal/models"
)

// memUserRepo is an in-memory UserRepository for service tests.
type memUserRepo struct {
	users  map[uint]*models.User
	nextID uint
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[uint]*models.User)}
}

func (r *memUserRepo) addUser(name, email string) *models.User {
	r.nextID++
	u := &models.User{ID: r.nextID, Name: name, Email: email}
	r.users[u.ID] = u
	return u
}

func (r *memUserRepo) GetByID(ctx context.Context, id uint) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, models.NewNotFoundError("Couldn't find the user")
	}
	return u, nil
}

func (r *memUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) Create(ctx context.Context, user *models.User) error {
	for _, u := range r.users {
		if u.Email == user.Email {
			return models.NewConflictError("Email already taken or Incorrect inputs")
		}
	}
	r.nextID++
	user.ID = r.nextID
	r.users[user.ID] = user
	return nil
}

func (r *memUserRepo) Search(ctx context.Context, filter string, excludeID uint, limit, offset int) ([]models.User, error) {
	needle := strings.ToLower(filter)
	var out []models.User
	for id := uint(1); id <= r.nextID; id++ {
		u, ok := r.users[id]
		if !ok || u.ID == excludeID {
			continue
		}
		if needle != "" &&
			!strings.Contains(strings.ToLower(u.Name), needle) &&
			!strings.Contains(strings.ToLower(u.Email), needle) {
			continue
		}
		out = append(out, *u)
	}
	if offset > 0 {
		if offset >= len(out) {
			return nil, nil
		}
		out = out[offset:]
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *memUserRepo) ListByIDs(ctx context.Context, ids []uint) ([]models.User, error) {
	var out []models.User
	for _, id := range ids {
		if u, ok := r.users[id]; ok {
			out = append(out, *u)
		}
	}
	return out, nil
}

// memRelRepo is an in-memory RelationshipRepository.
type memRelRepo struct {
	requests    []models.FriendRequest
	friendships []models.Friendship
	nextID      uint
}

func newMemRelRepo() *memRelRepo {
	return &memRelRepo{}
}

func (r *memRelRepo) CreateRequest(ctx context.Context, req *models.FriendRequest) error {
	for _, existing := range r.requests {
		if existing.SenderID == req.SenderID && existing.ReceiverID == req.ReceiverID {
			return models.NewConflictError("Request already exists")
		}
	}
	r.nextID++
	req.ID = r.nextID
	r.requests = append(r.requests, *req)
	return nil
}

func (r *memRelRepo) GetPendingRequest(ctx context.Context, senderID, receiverID uint) (*models.FriendRequest, error) {
	for i := range r.requests {
		if r.requests[i].SenderID == senderID && r.requests[i].ReceiverID == receiverID {
			req := r.requests[i]
			return &req, nil
		}
	}
	return nil, nil
}

func (r *memRelRepo) DeleteRequest(ctx context.Context, requestID uint) error {
	for i := range r.requests {
		if r.requests[i].ID == requestID {
			r.requests = append(r.requests[:i], r.requests[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *memRelRepo) SentReceiverIDs(ctx context.Context, senderID uint) ([]uint, error) {
	var ids []uint
	for _, req := range r.requests {
		if req.SenderID == senderID {
			ids = append(ids, req.ReceiverID)
		}
	}
	return ids, nil
}

func (r *memRelRepo) ReceivedSenderIDs(ctx context.Context, receiverID uint) ([]uint, error) {
	var ids []uint
	for _, req := range r.requests {
		if req.ReceiverID == receiverID {
			ids = append(ids, req.SenderID)
		}
	}
	return ids, nil
}

func (r *memRelRepo) addFriendship(ownerID, friendID uint) {
	r.nextID++
	r.friendships = append(r.friendships, models.Friendship{ID: r.nextID, OwnerID: ownerID, FriendID: friendID})
}

func (r *memRelRepo) GetFriendship(ctx context.Context, ownerID, friendID uint) (*models.Friendship, error) {
	for i := range r.friendships {
		if r.friendships[i].OwnerID == ownerID && r.friendships[i].FriendID == friendID {
			f := r.friendships[i]
			return &f, nil
		}
	}
	return nil, nil
}

func (r *memRelRepo) FollowingIDs(ctx context.Context, ownerID uint) ([]uint, error) {
	var ids []uint
	for _, f := range r.friendships {
		if f.OwnerID == ownerID {
			ids = append(ids, f.FriendID)
		}
	}
	return ids, nil
}

func (r *memRelRepo) FollowerIDs(ctx context.Context, friendID uint) ([]uint, error) {
	var ids []uint
	for _, f := range r.friendships {
		if f.FriendID == friendID {
			ids = append(ids, f.OwnerID)
		}
	}
	return ids, nil
}

func (r *memRelRepo) OwnerIDsWithFriendIn(ctx context.Context, friendIDs, excludeIDs []uint) ([]uint, error) {
	in := make(map[uint]struct{}, len(friendIDs))
	for _, id := range friendIDs {
		in[id] = struct{}{}
	}
	excluded := make(map[uint]struct{}, len(excludeIDs))
	for _, id := range excludeIDs {
		excluded[id] = struct{}{}
	}

	seen := make(map[uint]struct{})
	var ids []uint
	for _, f := range r.friendships {
		if _, ok := in[f.FriendID]; !ok {
			continue
		}
		if _, ok := excluded[f.OwnerID]; ok {
			continue
		}
		if _, ok := seen[f.OwnerID]; ok {
			continue
		}
		seen[f.OwnerID] = struct{}{}
		ids = append(ids, f.OwnerID)
	}
	return ids, nil
}

func (r *memRelRepo) AcceptRequest(ctx context.Context, requestID uint, friendship *models.Friendship) error {
	for _, f := range r.friendships {
		if f.OwnerID == friendship.OwnerID && f.FriendID == friendship.FriendID {
			return models.NewConflictError("You are already a friend!")
		}
	}
	if err := r.DeleteRequest(ctx, requestID); err != nil {
		return err
	}
	r.addFriendship(friendship.OwnerID, friendship.FriendID)
	return nil
}

// memTagRepo is an in-memory PersonalizationRepository.
type memTagRepo struct {
	tags   []models.PersonalizationTag
	nextID uint
}

func newMemTagRepo() *memTagRepo {
	return &memTagRepo{}
}

func (r *memTagRepo) Add(ctx context.Context, tag *models.PersonalizationTag) error {
	r.nextID++
	tag.ID = r.nextID
	r.tags = append(r.tags, *tag)
	return nil
}

func (r *memTagRepo) RemoveFirst(ctx context.Context, userID uint, kind models.TagKind, value string) error {
	for i := range r.tags {
		t := r.tags[i]
		if t.UserID == userID && t.Kind == kind && t.Value == value {
			r.tags = append(r.tags[:i], r.tags[i+1:]...)
			return nil
		}
	}
	return models.NewNotFoundError("No such " + string(kind) + " exist")
}

func (r *memTagRepo) ListByUser(ctx context.Context, userID uint) ([]models.PersonalizationTag, error) {
	var out []models.PersonalizationTag
	for _, t := range r.tags {
		if t.UserID == userID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *memTagRepo) UserIDsWithAnyValue(ctx context.Context, values []string, excludeIDs []uint) ([]uint, error) {
	wanted := make(map[string]struct{}, len(values))
	for _, v := range values {
		wanted[v] = struct{}{}
	}
	excluded := make(map[uint]struct{}, len(excludeIDs))
	for _, id := range excludeIDs {
		excluded[id] = struct{}{}
	}

	seen := make(map[uint]struct{})
	var ids []uint
	for _, t := range r.tags {
		if _, ok := wanted[t.Value]; !ok {
			continue
		}
		if _, ok := excluded[t.UserID]; ok {
			continue
		}
		if _, ok := seen[t.UserID]; ok {
			continue
		}
		seen[t.UserID] = struct{}{}
		ids = append(ids, t.UserID)
	}
	return ids, nil
}
