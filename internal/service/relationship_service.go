package service

import (
	"context"

	"friendconnect/internal/models"
	"friendconnect/internal/repository"
)

// RelationshipService computes friend status, mutual friends and suggestions,
// and manages the friend request lifecycle.
//
// Friendship edges follow a single directional convention everywhere:
// Friendship(owner, friend) means owner recorded friend, created when owner
// accepts friend's request.
type RelationshipService struct {
	relRepo  repository.RelationshipRepository
	userRepo repository.UserRepository
	tagRepo  repository.PersonalizationRepository
}

// NewRelationshipService returns a new RelationshipService.
func NewRelationshipService(
	relRepo repository.RelationshipRepository,
	userRepo repository.UserRepository,
	tagRepo repository.PersonalizationRepository,
) *RelationshipService {
	return &RelationshipService{
		relRepo:  relRepo,
		userRepo: userRepo,
		tagRepo:  tagRepo,
	}
}

// annotate attaches the caller-relative friend status to each user:
// "Already Friend" if the caller recorded them, else "Requested" if the
// caller has a pending outbound request, else "Send request".
func (s *RelationshipService) annotate(ctx context.Context, selfID uint, users []models.User) ([]models.AnnotatedUser, error) {
	followingIDs, err := s.relRepo.FollowingIDs(ctx, selfID)
	if err != nil {
		return nil, err
	}
	sentIDs, err := s.relRepo.SentReceiverIDs(ctx, selfID)
	if err != nil {
		return nil, err
	}

	following := make(map[uint]struct{}, len(followingIDs))
	for _, id := range followingIDs {
		following[id] = struct{}{}
	}
	sent := make(map[uint]struct{}, len(sentIDs))
	for _, id := range sentIDs {
		sent[id] = struct{}{}
	}

	annotated := make([]models.AnnotatedUser, 0, len(users))
	for _, u := range users {
		status := models.FriendStatusNone
		if _, ok := following[u.ID]; ok {
			status = models.FriendStatusFriend
		} else if _, ok := sent[u.ID]; ok {
			status = models.FriendStatusRequested
		}
		annotated = append(annotated, models.AnnotatedUser{
			ID:     u.ID,
			Name:   u.Name,
			Status: status,
		})
	}
	return annotated, nil
}

// ListUsers returns every user whose name or email contains filter
// (case-insensitive), excluding the caller, annotated with friend status.
// limit <= 0 preserves the legacy unbounded listing.
func (s *RelationshipService) ListUsers(ctx context.Context, selfID uint, filter string, limit, offset int) ([]models.AnnotatedUser, error) {
	if _, err := s.userRepo.GetByID(ctx, selfID); err != nil {
		return nil, err
	}

	users, err := s.userRepo.Search(ctx, filter, selfID, limit, offset)
	if err != nil {
		return nil, err
	}
	return s.annotate(ctx, selfID, users)
}

// MutualFriends returns friends-of-friends of the caller. F is the set of
// users who recorded the caller as a friend; the result is every user who
// recorded someone in F, minus the caller and F itself, deduplicated.
// followerCount reports |F| so callers can distinguish "no friends" from
// "no mutual friends".
func (s *RelationshipService) MutualFriends(ctx context.Context, selfID uint) (mutuals []models.AnnotatedUser, followerCount int, err error) {
	if _, err := s.userRepo.GetByID(ctx, selfID); err != nil {
		return nil, 0, err
	}

	followerIDs, err := s.relRepo.FollowerIDs(ctx, selfID)
	if err != nil {
		return nil, 0, err
	}
	if len(followerIDs) == 0 {
		return nil, 0, nil
	}

	exclude := append([]uint{selfID}, followerIDs...)
	fofIDs, err := s.relRepo.OwnerIDsWithFriendIn(ctx, followerIDs, exclude)
	if err != nil {
		return nil, len(followerIDs), err
	}
	if len(fofIDs) == 0 {
		return nil, len(followerIDs), nil
	}

	users, err := s.userRepo.ListByIDs(ctx, fofIDs)
	if err != nil {
		return nil, len(followerIDs), err
	}

	mutuals, err = s.annotate(ctx, selfID, users)
	return mutuals, len(followerIDs), err
}

// Suggestions returns users sharing at least one hobby or interest value with
// the caller, excluding the caller and everyone the caller already recorded.
// Any match qualifies equally; there is no overlap ranking.
func (s *RelationshipService) Suggestions(ctx context.Context, selfID uint, limit, offset int) ([]models.AnnotatedUser, error) {
	if _, err := s.userRepo.GetByID(ctx, selfID); err != nil {
		return nil, err
	}

	tags, err := s.tagRepo.ListByUser(ctx, selfID)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{}, len(tags))
	values := make([]string, 0, len(tags))
	for _, t := range tags {
		if _, ok := seen[t.Value]; ok {
			continue
		}
		seen[t.Value] = struct{}{}
		values = append(values, t.Value)
	}
	if len(values) == 0 {
		return nil, nil
	}

	followingIDs, err := s.relRepo.FollowingIDs(ctx, selfID)
	if err != nil {
		return nil, err
	}
	exclude := append([]uint{selfID}, followingIDs...)

	ids, err := s.tagRepo.UserIDsWithAnyValue(ctx, values, exclude)
	if err != nil {
		return nil, err
	}

	// Optional pagination over the stable id ordering. Negative values are
	// treated as absent.
	if offset < 0 {
		offset = 0
	}
	if limit > 0 {
		if offset >= len(ids) {
			return nil, nil
		}
		ids = ids[offset:]
		if len(ids) > limit {
			ids = ids[:limit]
		}
	}

	users, err := s.userRepo.ListByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	return s.annotate(ctx, selfID, users)
}

// SendRequest creates a pending request from sender to receiver.
func (s *RelationshipService) SendRequest(ctx context.Context, senderID, receiverID uint) (*models.FriendRequest, error) {
	if senderID == receiverID {
		return nil, models.NewValidationError("Cannot send a request to yourself")
	}

	if _, err := s.userRepo.GetByID(ctx, senderID); err != nil {
		return nil, err
	}
	if _, err := s.userRepo.GetByID(ctx, receiverID); err != nil {
		return nil, err
	}

	existing, err := s.relRepo.GetPendingRequest(ctx, senderID, receiverID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, models.NewConflictError("Request already exists")
	}

	// The edge that accepting this request would create.
	friendship, err := s.relRepo.GetFriendship(ctx, receiverID, senderID)
	if err != nil {
		return nil, err
	}
	if friendship != nil {
		return nil, models.NewValidationError("You are already a friend!")
	}

	req := &models.FriendRequest{
		SenderID:   senderID,
		ReceiverID: receiverID,
		Status:     models.RequestStatusPending,
	}
	if err := s.relRepo.CreateRequest(ctx, req); err != nil {
		return nil, err
	}
	return req, nil
}

// HandleRequest accepts or rejects the pending request from sender to
// receiver. Accepting deletes the request and records Friendship(receiver,
// sender) in one transaction; rejecting only deletes the request.
func (s *RelationshipService) HandleRequest(ctx context.Context, receiverID, senderID uint, accept bool) error {
	if _, err := s.userRepo.GetByID(ctx, senderID); err != nil {
		return err
	}
	if _, err := s.userRepo.GetByID(ctx, receiverID); err != nil {
		return err
	}

	req, err := s.relRepo.GetPendingRequest(ctx, senderID, receiverID)
	if err != nil {
		return err
	}
	if req == nil {
		return models.NewNotFoundError("Friend Request not found")
	}

	if !accept {
		return s.relRepo.DeleteRequest(ctx, req.ID)
	}

	friendship := &models.Friendship{
		OwnerID:  receiverID,
		FriendID: senderID,
	}
	return s.relRepo.AcceptRequest(ctx, req.ID, friendship)
}

// GetRequests returns who the caller has pending requests to (sent) and from
// (received), as id/name summaries.
func (s *RelationshipService) GetRequests(ctx context.Context, selfID uint) (sent, received []models.UserSummary, err error) {
	if _, err := s.userRepo.GetByID(ctx, selfID); err != nil {
		return nil, nil, err
	}

	receiverIDs, err := s.relRepo.SentReceiverIDs(ctx, selfID)
	if err != nil {
		return nil, nil, err
	}
	senderIDs, err := s.relRepo.ReceivedSenderIDs(ctx, selfID)
	if err != nil {
		return nil, nil, err
	}

	sentUsers, err := s.userRepo.ListByIDs(ctx, receiverIDs)
	if err != nil {
		return nil, nil, err
	}
	receivedUsers, err := s.userRepo.ListByIDs(ctx, senderIDs)
	if err != nil {
		return nil, nil, err
	}

	return summaries(sentUsers), summaries(receivedUsers), nil
}

// GetProfile returns the caller's account plus following (users the caller
// recorded) and followers (users who recorded the caller).
func (s *RelationshipService) GetProfile(ctx context.Context, selfID uint) (user *models.User, following, followers []models.UserSummary, err error) {
	user, err = s.userRepo.GetByID(ctx, selfID)
	if err != nil {
		return nil, nil, nil, err
	}

	followingIDs, err := s.relRepo.FollowingIDs(ctx, selfID)
	if err != nil {
		return nil, nil, nil, err
	}
	followerIDs, err := s.relRepo.FollowerIDs(ctx, selfID)
	if err != nil {
		return nil, nil, nil, err
	}

	followingUsers, err := s.userRepo.ListByIDs(ctx, followingIDs)
	if err != nil {
		return nil, nil, nil, err
	}
	followerUsers, err := s.userRepo.ListByIDs(ctx, followerIDs)
	if err != nil {
		return nil, nil, nil, err
	}

	return user, summaries(followingUsers), summaries(followerUsers), nil
}

func summaries(users []models.User) []models.UserSummary {
	out := make([]models.UserSummary, 0, len(users))
	for _, u := range users {
		out = append(out, models.UserSummary{ID: u.ID, Name: u.Name})
	}
	return out
}
