package service

import (
	"context"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"alcyxob/fitmetric/internal/domain"
	"alcyxob/fitmetric/internal/repository"
)

// --- Stubs ---

type stubPlanRepo struct {
	plans       map[primitive.ObjectID]*domain.ExercisePlan
	createCalls int
	// failNextCreate simulates the partial unique index rejecting a second
	// active plan created by a concurrent request.
	failNextCreate bool
	racedPlan      *domain.ExercisePlan
}

func newStubPlanRepo() *stubPlanRepo {
	return &stubPlanRepo{plans: make(map[primitive.ObjectID]*domain.ExercisePlan)}
}

func (r *stubPlanRepo) Create(_ context.Context, plan *domain.ExercisePlan) (primitive.ObjectID, error) {
	r.createCalls++
	if r.failNextCreate {
		r.failNextCreate = false
		if r.racedPlan != nil {
			r.plans[r.racedPlan.ID] = r.racedPlan
		}
		return primitive.NilObjectID, repository.ErrActivePlanExists
	}
	for _, existing := range r.plans {
		if existing.UserID == plan.UserID && existing.Status == domain.PlanStatusActive && plan.Status == domain.PlanStatusActive {
			return primitive.NilObjectID, repository.ErrActivePlanExists
		}
	}
	id := primitive.NewObjectID()
	stored := *plan
	stored.ID = id
	r.plans[id] = &stored
	return id, nil
}

func (r *stubPlanRepo) GetActiveByUser(_ context.Context, userID primitive.ObjectID) (*domain.ExercisePlan, error) {
	for _, plan := range r.plans {
		if plan.UserID == userID && plan.Status == domain.PlanStatusActive {
			copied := *plan
			return &copied, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *stubPlanRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.ExercisePlan, error) {
	if plan, ok := r.plans[id]; ok {
		copied := *plan
		return &copied, nil
	}
	return nil, repository.ErrNotFound
}

func (r *stubPlanRepo) GetAllByUser(_ context.Context, userID primitive.ObjectID) ([]domain.ExercisePlan, error) {
	var out []domain.ExercisePlan
	for _, plan := range r.plans {
		if plan.UserID == userID {
			out = append(out, *plan)
		}
	}
	return out, nil
}

func (r *stubPlanRepo) UpdateStatus(_ context.Context, planID, userID primitive.ObjectID, status domain.PlanStatus) (*domain.ExercisePlan, error) {
	plan, ok := r.plans[planID]
	if !ok || plan.UserID != userID {
		return nil, repository.ErrNotFound
	}
	plan.Status = status
	copied := *plan
	return &copied, nil
}

type stubUserRepo struct {
	users map[primitive.ObjectID]*domain.User
}

func newStubUserRepo(users ...*domain.User) *stubUserRepo {
	r := &stubUserRepo{users: make(map[primitive.ObjectID]*domain.User)}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (primitive.ObjectID, error) {
	for _, existing := range r.users {
		if existing.Email == user.Email {
			return primitive.NilObjectID, repository.ErrDuplicateEmail
		}
	}
	id := primitive.NewObjectID()
	stored := *user
	stored.ID = id
	r.users[id] = &stored
	return id, nil
}

func (r *stubUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *stubUserRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.User, error) {
	if user, ok := r.users[id]; ok {
		copied := *user
		return &copied, nil
	}
	return nil, repository.ErrNotFound
}

func (r *stubUserRepo) GetAll(_ context.Context) ([]domain.User, error) {
	var out []domain.User
	for _, user := range r.users {
		out = append(out, *user)
	}
	return out, nil
}

// --- Tests ---

func testUser(id primitive.ObjectID) *domain.User {
	return &domain.User{
		ID:            id,
		Name:          "Test User",
		Email:         "test@example.com",
		Goal:          domain.GoalWeightLoss,
		FitnessLevel:  domain.LevelBeginner,
		ActivityLevel: domain.ActivitySedentary,
		FitnessScore:  35,
	}
}

func TestGeneratePlanCreatesActivePlan(t *testing.T) {
	userID := primitive.NewObjectID()
	planRepo := newStubPlanRepo()
	svc := NewPlanService(planRepo, newStubUserRepo(testUser(userID)))

	plan, err := svc.GeneratePlan(context.Background(), userID)
	if err != nil {
		t.Fatalf("GeneratePlan: %v", err)
	}
	if plan.Status != domain.PlanStatusActive {
		t.Errorf("status = %q, want %q", plan.Status, domain.PlanStatusActive)
	}
	if plan.UserID != userID {
		t.Errorf("userID = %v, want %v", plan.UserID, userID)
	}
	if plan.ID.IsZero() {
		t.Error("plan ID not assigned")
	}
	if got := plan.EndDate.Sub(plan.StartDate); got != time.Duration(plan.DurationWeeks)*7*24*time.Hour {
		t.Errorf("end date span = %v, want %d weeks", got, plan.DurationWeeks)
	}
}

func TestGeneratePlanIsIdempotent(t *testing.T) {
	userID := primitive.NewObjectID()
	planRepo := newStubPlanRepo()
	svc := NewPlanService(planRepo, newStubUserRepo(testUser(userID)))

	first, err := svc.GeneratePlan(context.Background(), userID)
	if err != nil {
		t.Fatalf("first GeneratePlan: %v", err)
	}
	second, err := svc.GeneratePlan(context.Background(), userID)
	if err != nil {
		t.Fatalf("second GeneratePlan: %v", err)
	}
	if first.ID != second.ID {
		t.Errorf("second call produced a different plan: %v vs %v", first.ID, second.ID)
	}
	if planRepo.createCalls != 1 {
		t.Errorf("Create called %d times, want 1", planRepo.createCalls)
	}
}

func TestGeneratePlanRaceReturnsWinner(t *testing.T) {
	userID := primitive.NewObjectID()
	winner := &domain.ExercisePlan{
		ID:     primitive.NewObjectID(),
		UserID: userID,
		Status: domain.PlanStatusActive,
	}
	planRepo := newStubPlanRepo()
	planRepo.failNextCreate = true
	planRepo.racedPlan = winner
	svc := NewPlanService(planRepo, newStubUserRepo(testUser(userID)))

	plan, err := svc.GeneratePlan(context.Background(), userID)
	if err != nil {
		t.Fatalf("GeneratePlan after lost race: %v", err)
	}
	if plan.ID != winner.ID {
		t.Errorf("got plan %v, want the winner's plan %v", plan.ID, winner.ID)
	}
}

func TestGeneratePlanUnknownUser(t *testing.T) {
	svc := NewPlanService(newStubPlanRepo(), newStubUserRepo())

	_, err := svc.GeneratePlan(context.Background(), primitive.NewObjectID())
	if err != ErrUserNotFound {
		t.Fatalf("err = %v, want ErrUserNotFound", err)
	}
}

func TestCompletePlanFreesActiveSlot(t *testing.T) {
	userID := primitive.NewObjectID()
	planRepo := newStubPlanRepo()
	svc := NewPlanService(planRepo, newStubUserRepo(testUser(userID)))

	first, err := svc.GeneratePlan(context.Background(), userID)
	if err != nil {
		t.Fatalf("GeneratePlan: %v", err)
	}

	completed, err := svc.CompletePlan(context.Background(), first.ID, userID)
	if err != nil {
		t.Fatalf("CompletePlan: %v", err)
	}
	if completed.Status != domain.PlanStatusCompleted {
		t.Errorf("status = %q, want %q", completed.Status, domain.PlanStatusCompleted)
	}

	second, err := svc.GeneratePlan(context.Background(), userID)
	if err != nil {
		t.Fatalf("GeneratePlan after complete: %v", err)
	}
	if second.ID == first.ID {
		t.Error("expected a fresh plan after completing the old one")
	}

	history, err := svc.GetPlanHistory(context.Background(), userID)
	if err != nil {
		t.Fatalf("GetPlanHistory: %v", err)
	}
	if len(history) != 2 {
		t.Errorf("history length = %d, want 2 (completed plan kept)", len(history))
	}
}

func TestCompletePlanWrongOwner(t *testing.T) {
	userID := primitive.NewObjectID()
	planRepo := newStubPlanRepo()
	svc := NewPlanService(planRepo, newStubUserRepo(testUser(userID)))

	plan, err := svc.GeneratePlan(context.Background(), userID)
	if err != nil {
		t.Fatalf("GeneratePlan: %v", err)
	}

	_, err = svc.CompletePlan(context.Background(), plan.ID, primitive.NewObjectID())
	if err != ErrPlanNotFound {
		t.Fatalf("err = %v, want ErrPlanNotFound for foreign plan", err)
	}
}
