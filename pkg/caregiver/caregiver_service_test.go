package caregiver

import (
	"MediTrack-Backend/domain"
	"MediTrack-Backend/entities"
	"MediTrack-Backend/pkg/user"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type mockCaregiverRepository struct {
	Links   map[string]*entities.CaregiverLink
	ByPair  *entities.CaregiverLink
	Created *entities.CaregiverLink
	Updated *entities.CaregiverLink
}

var _ CaregiverRepository = (*mockCaregiverRepository)(nil)

func newMockCaregiverRepository() *mockCaregiverRepository {
	return &mockCaregiverRepository{Links: map[string]*entities.CaregiverLink{}}
}

func (m *mockCaregiverRepository) CreateLink(ctx context.Context, link *entities.CaregiverLink) error {
	m.Created = link
	m.Links[link.ID.String()] = link
	return nil
}

func (m *mockCaregiverRepository) GetLinkByID(ctx context.Context, id string) (*entities.CaregiverLink, error) {
	if link, ok := m.Links[id]; ok {
		return link, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockCaregiverRepository) GetLinkByPair(ctx context.Context, caregiverID, patientID string) (*entities.CaregiverLink, error) {
	return m.ByPair, nil
}

func (m *mockCaregiverRepository) UpdateLink(ctx context.Context, link *entities.CaregiverLink) error {
	m.Updated = link
	m.Links[link.ID.String()] = link
	return nil
}

func (m *mockCaregiverRepository) GetLinksByCaregiver(ctx context.Context, caregiverID string, status string) ([]*entities.CaregiverLink, error) {
	var links []*entities.CaregiverLink
	for _, link := range m.Links {
		if link.CaregiverID.String() == caregiverID {
			links = append(links, link)
		}
	}
	return links, nil
}

func (m *mockCaregiverRepository) GetLinksByPatient(ctx context.Context, patientID string, status string) ([]*entities.CaregiverLink, error) {
	var links []*entities.CaregiverLink
	for _, link := range m.Links {
		if link.PatientID.String() == patientID {
			if status != "all" && link.Status != status {
				continue
			}
			links = append(links, link)
		}
	}
	return links, nil
}

type mockUserRepository struct {
	Users map[string]*entities.User
}

var _ user.UserRepository = (*mockUserRepository)(nil)

func newMockUserRepository(users ...*entities.User) *mockUserRepository {
	m := &mockUserRepository{Users: map[string]*entities.User{}}
	for _, u := range users {
		m.Users[u.ID.String()] = u
		m.Users[u.Email] = u
	}
	return m
}

func (m *mockUserRepository) CreateUser(ctx context.Context, u *entities.User) error {
	m.Users[u.ID.String()] = u
	m.Users[u.Email] = u
	return nil
}

func (m *mockUserRepository) GetUserByID(ctx context.Context, id string) (*entities.User, error) {
	if u, ok := m.Users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepository) GetUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	if u, ok := m.Users[email]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepository) UpdateUser(ctx context.Context, u *entities.User) error {
	return nil
}

func testCaregiver() *entities.User {
	return &entities.User{ID: uuid.New(), Name: "Ravi", Email: "ravi@example.com", Role: domain.RoleCaregiver}
}

func testPatient() *entities.User {
	return &entities.User{ID: uuid.New(), Name: "Asha", Email: "asha@example.com", Role: domain.RolePatient}
}

func TestRequestLinkCreatesPendingLink(t *testing.T) {
	caregiverUser := testCaregiver()
	patient := testPatient()
	repo := newMockCaregiverRepository()
	service := NewCaregiverService(repo, newMockUserRepository(caregiverUser, patient))

	res, err := service.RequestLink(context.Background(), domain.RequestLinkRequest{
		PatientEmail: patient.Email,
	}, caregiverUser.ID.String())

	assert.NoError(t, err)
	assert.Equal(t, domain.LinkStatusPending, res.Status)
	assert.Equal(t, patient.ID.String(), res.PatientID)
	assert.NotNil(t, repo.Created)
}

func TestRequestLinkOnlyCaregiversMayRequest(t *testing.T) {
	patient := testPatient()
	other := testPatient()
	other.Email = "other@example.com"
	service := NewCaregiverService(newMockCaregiverRepository(), newMockUserRepository(patient, other))

	_, err := service.RequestLink(context.Background(), domain.RequestLinkRequest{
		PatientEmail: other.Email,
	}, patient.ID.String())

	assert.ErrorIs(t, err, domain.ErrNotACaregiver)
}

func TestRequestLinkTargetMustBePatient(t *testing.T) {
	caregiverUser := testCaregiver()
	otherCaregiver := testCaregiver()
	otherCaregiver.Email = "other@example.com"
	service := NewCaregiverService(newMockCaregiverRepository(), newMockUserRepository(caregiverUser, otherCaregiver))

	_, err := service.RequestLink(context.Background(), domain.RequestLinkRequest{
		PatientEmail: otherCaregiver.Email,
	}, caregiverUser.ID.String())

	assert.ErrorIs(t, err, domain.ErrNotAPatient)
}

func TestRequestLinkRejectsDuplicate(t *testing.T) {
	caregiverUser := testCaregiver()
	patient := testPatient()
	repo := newMockCaregiverRepository()
	repo.ByPair = &entities.CaregiverLink{
		ID:          uuid.New(),
		CaregiverID: caregiverUser.ID,
		PatientID:   patient.ID,
		Status:      domain.LinkStatusPending,
	}
	service := NewCaregiverService(repo, newMockUserRepository(caregiverUser, patient))

	_, err := service.RequestLink(context.Background(), domain.RequestLinkRequest{
		PatientEmail: patient.Email,
	}, caregiverUser.ID.String())

	assert.ErrorIs(t, err, domain.ErrLinkAlreadyExists)
}

func TestRequestLinkDeclinedLinkCanBeRetried(t *testing.T) {
	caregiverUser := testCaregiver()
	patient := testPatient()
	repo := newMockCaregiverRepository()
	repo.ByPair = &entities.CaregiverLink{
		ID:          uuid.New(),
		CaregiverID: caregiverUser.ID,
		PatientID:   patient.ID,
		Status:      domain.LinkStatusDeclined,
	}
	service := NewCaregiverService(repo, newMockUserRepository(caregiverUser, patient))

	res, err := service.RequestLink(context.Background(), domain.RequestLinkRequest{
		PatientEmail: patient.Email,
	}, caregiverUser.ID.String())

	assert.NoError(t, err)
	assert.Equal(t, domain.LinkStatusPending, res.Status)
}

func TestRespondLinkAccept(t *testing.T) {
	caregiverUser := testCaregiver()
	patient := testPatient()
	repo := newMockCaregiverRepository()
	link := &entities.CaregiverLink{
		ID:          uuid.New(),
		CaregiverID: caregiverUser.ID,
		PatientID:   patient.ID,
		Status:      domain.LinkStatusPending,
	}
	repo.Links[link.ID.String()] = link
	service := NewCaregiverService(repo, newMockUserRepository(caregiverUser, patient))

	err := service.RespondLink(context.Background(), link.ID.String(), domain.RespondLinkRequest{Accept: true}, patient.ID.String())

	assert.NoError(t, err)
	assert.Equal(t, domain.LinkStatusAccepted, link.Status)
	assert.NotNil(t, link.RespondedAt)
}

func TestRespondLinkOnlyThePatientMayRespond(t *testing.T) {
	caregiverUser := testCaregiver()
	patient := testPatient()
	repo := newMockCaregiverRepository()
	link := &entities.CaregiverLink{
		ID:          uuid.New(),
		CaregiverID: caregiverUser.ID,
		PatientID:   patient.ID,
		Status:      domain.LinkStatusPending,
	}
	repo.Links[link.ID.String()] = link
	service := NewCaregiverService(repo, newMockUserRepository(caregiverUser, patient))

	err := service.RespondLink(context.Background(), link.ID.String(), domain.RespondLinkRequest{Accept: true}, caregiverUser.ID.String())

	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestRespondLinkAlreadyResponded(t *testing.T) {
	patient := testPatient()
	repo := newMockCaregiverRepository()
	link := &entities.CaregiverLink{
		ID:        uuid.New(),
		PatientID: patient.ID,
		Status:    domain.LinkStatusAccepted,
	}
	repo.Links[link.ID.String()] = link
	service := NewCaregiverService(repo, newMockUserRepository(patient))

	err := service.RespondLink(context.Background(), link.ID.String(), domain.RespondLinkRequest{Accept: false}, patient.ID.String())

	assert.ErrorIs(t, err, domain.ErrLinkNotPending)
}

func TestCanAccessPatientSelf(t *testing.T) {
	service := NewCaregiverService(newMockCaregiverRepository(), newMockUserRepository())
	id := uuid.NewString()

	allowed, err := service.CanAccessPatient(context.Background(), id, id)

	assert.NoError(t, err)
	assert.True(t, allowed)
}

func TestCanAccessPatientRequiresAcceptedLink(t *testing.T) {
	caregiverUser := testCaregiver()
	patient := testPatient()
	repo := newMockCaregiverRepository()
	service := NewCaregiverService(repo, newMockUserRepository(caregiverUser, patient))

	allowed, err := service.CanAccessPatient(context.Background(), caregiverUser.ID.String(), patient.ID.String())
	assert.NoError(t, err)
	assert.False(t, allowed)

	repo.ByPair = &entities.CaregiverLink{
		CaregiverID: caregiverUser.ID,
		PatientID:   patient.ID,
		Status:      domain.LinkStatusPending,
	}
	allowed, err = service.CanAccessPatient(context.Background(), caregiverUser.ID.String(), patient.ID.String())
	assert.NoError(t, err)
	assert.False(t, allowed)

	repo.ByPair.Status = domain.LinkStatusAccepted
	allowed, err = service.CanAccessPatient(context.Background(), caregiverUser.ID.String(), patient.ID.String())
	assert.NoError(t, err)
	assert.True(t, allowed)
}

func TestListAcceptedCaregiverIDs(t *testing.T) {
	caregiverUser := testCaregiver()
	patient := testPatient()
	repo := newMockCaregiverRepository()
	repo.Links[uuid.NewString()] = &entities.CaregiverLink{
		ID:          uuid.New(),
		CaregiverID: caregiverUser.ID,
		PatientID:   patient.ID,
		Status:      domain.LinkStatusAccepted,
	}
	service := NewCaregiverService(repo, newMockUserRepository(caregiverUser, patient))

	ids, err := service.ListAcceptedCaregiverIDs(context.Background(), patient.ID.String())

	assert.NoError(t, err)
	assert.Equal(t, []string{caregiverUser.ID.String()}, ids)
}
