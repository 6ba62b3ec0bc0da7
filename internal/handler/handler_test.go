package handler

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"sort"
	"testing"
	"time"

	"healthcare-backend/internal/apperr"
	"healthcare-backend/internal/middleware"
	"healthcare-backend/internal/models"
	"healthcare-backend/internal/service"
	"healthcare-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// In-memory store fakes backing the handler suites. They enforce the same
// constraints the MySQL schema does: unique doctor email/license and the
// unconditional (patient, doctor) pair index.

type fakeAuditStore struct {
	actions []string
}

func (f *fakeAuditStore) CreateAuditLog(userID *uint, action string, details string) error {
	f.actions = append(f.actions, action)
	return nil
}

type fakePatientStore struct {
	patients map[uint]*models.Patient
	nextID   uint
	clock    time.Time
}

func newFakePatientStore() *fakePatientStore {
	return &fakePatientStore{
		patients: make(map[uint]*models.Patient),
		clock:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (f *fakePatientStore) tick() time.Time {
	f.clock = f.clock.Add(time.Second)
	return f.clock
}

func (f *fakePatientStore) ListByOwner(ownerID uint) ([]models.Patient, error) {
	var out []models.Patient
	for _, p := range f.patients {
		if p.CreatedBy == ownerID {
			out = append(out, *p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f *fakePatientStore) FindByIDForOwner(id, ownerID uint) (*models.Patient, error) {
	p, ok := f.patients[id]
	if !ok || p.CreatedBy != ownerID {
		return nil, apperr.ErrNotFound
	}
	copied := *p
	return &copied, nil
}

func (f *fakePatientStore) Exists(id uint) (bool, error) {
	_, ok := f.patients[id]
	return ok, nil
}

func (f *fakePatientStore) Create(patient *models.Patient) error {
	f.nextID++
	patient.ID = f.nextID
	patient.CreatedAt = f.tick()
	patient.UpdatedAt = patient.CreatedAt
	copied := *patient
	f.patients[patient.ID] = &copied
	return nil
}

func (f *fakePatientStore) Update(patient *models.Patient) error {
	patient.UpdatedAt = f.tick()
	copied := *patient
	f.patients[patient.ID] = &copied
	return nil
}

func (f *fakePatientStore) Delete(id uint) error {
	delete(f.patients, id)
	return nil
}

func (f *fakePatientStore) CountByOwner(ownerID uint) (int64, error) {
	var count int64
	for _, p := range f.patients {
		if p.CreatedBy == ownerID {
			count++
		}
	}
	return count, nil
}

type fakeDoctorStore struct {
	doctors map[uint]*models.Doctor
	nextID  uint
	clock   time.Time
}

func newFakeDoctorStore() *fakeDoctorStore {
	return &fakeDoctorStore{
		doctors: make(map[uint]*models.Doctor),
		clock:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (f *fakeDoctorStore) ListAll() ([]models.Doctor, error) {
	var out []models.Doctor
	for _, d := range f.doctors {
		out = append(out, *d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeDoctorStore) FindByID(id uint) (*models.Doctor, error) {
	d, ok := f.doctors[id]
	if !ok {
		return nil, apperr.ErrNotFound
	}
	copied := *d
	return &copied, nil
}

func (f *fakeDoctorStore) Create(doctor *models.Doctor) error {
	for _, d := range f.doctors {
		if d.Email == doctor.Email || d.LicenseNumber == doctor.LicenseNumber {
			return apperr.Validation("", "A doctor with this email or license number already exists")
		}
	}
	f.nextID++
	doctor.ID = f.nextID
	f.clock = f.clock.Add(time.Second)
	doctor.CreatedAt = f.clock
	doctor.UpdatedAt = f.clock
	copied := *doctor
	f.doctors[doctor.ID] = &copied
	return nil
}

func (f *fakeDoctorStore) Update(doctor *models.Doctor) error {
	for _, d := range f.doctors {
		if d.ID != doctor.ID && (d.Email == doctor.Email || d.LicenseNumber == doctor.LicenseNumber) {
			return apperr.Validation("", "A doctor with this email or license number already exists")
		}
	}
	copied := *doctor
	f.doctors[doctor.ID] = &copied
	return nil
}

func (f *fakeDoctorStore) Delete(id uint) error {
	delete(f.doctors, id)
	return nil
}

func (f *fakeDoctorStore) CountAll() (int64, error) {
	return int64(len(f.doctors)), nil
}

type fakeMappingStore struct {
	mappings map[uint]*models.PatientDoctorMapping
	nextID   uint
	clock    time.Time
	patients *fakePatientStore
	doctors  *fakeDoctorStore
}

func newFakeMappingStore(patients *fakePatientStore, doctors *fakeDoctorStore) *fakeMappingStore {
	return &fakeMappingStore{
		mappings: make(map[uint]*models.PatientDoctorMapping),
		clock:    time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		patients: patients,
		doctors:  doctors,
	}
}

func (f *fakeMappingStore) fill(m models.PatientDoctorMapping) models.PatientDoctorMapping {
	if p, ok := f.patients.patients[m.PatientID]; ok {
		m.Patient = *p
	}
	if d, ok := f.doctors.doctors[m.DoctorID]; ok {
		m.Doctor = *d
	}
	return m
}

func (f *fakeMappingStore) ListActive() ([]models.PatientDoctorMapping, error) {
	var out []models.PatientDoctorMapping
	for _, m := range f.mappings {
		if m.IsActive {
			out = append(out, f.fill(*m))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].AssignedAt.After(out[j].AssignedAt) })
	return out, nil
}

func (f *fakeMappingStore) ListActiveByPatient(patientID uint) ([]models.PatientDoctorMapping, error) {
	var out []models.PatientDoctorMapping
	for _, m := range f.mappings {
		if m.IsActive && m.PatientID == patientID {
			out = append(out, f.fill(*m))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].AssignedAt.After(out[j].AssignedAt) })
	return out, nil
}

func (f *fakeMappingStore) FindByID(id uint) (*models.PatientDoctorMapping, error) {
	m, ok := f.mappings[id]
	if !ok {
		return nil, apperr.ErrNotFound
	}
	filled := f.fill(*m)
	return &filled, nil
}

func (f *fakeMappingStore) ActiveExists(patientID, doctorID uint) (bool, error) {
	for _, m := range f.mappings {
		if m.PatientID == patientID && m.DoctorID == doctorID && m.IsActive {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeMappingStore) Create(mapping *models.PatientDoctorMapping) error {
	for _, m := range f.mappings {
		if m.PatientID == mapping.PatientID && m.DoctorID == mapping.DoctorID {
			return apperr.Validation("", "A mapping already exists for this patient and doctor")
		}
	}
	f.nextID++
	mapping.ID = f.nextID
	f.clock = f.clock.Add(time.Second)
	mapping.AssignedAt = f.clock
	copied := *mapping
	f.mappings[mapping.ID] = &copied
	return nil
}

func (f *fakeMappingStore) Deactivate(id uint) error {
	if m, ok := f.mappings[id]; ok {
		m.IsActive = false
	}
	return nil
}

func (f *fakeMappingStore) CountActiveByOwner(ownerID uint) (int64, error) {
	var count int64
	for _, m := range f.mappings {
		p, ok := f.patients.patients[m.PatientID]
		if ok && m.IsActive && p.CreatedBy == ownerID {
			count++
		}
	}
	return count, nil
}

type fakeUserStore struct {
	users         map[uint]*models.User
	nextID        uint
	refreshTokens map[string]*models.RefreshToken
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{
		users:         make(map[uint]*models.User),
		refreshTokens: make(map[string]*models.RefreshToken),
	}
}

func (f *fakeUserStore) FindUserByLogin(login string) (*models.User, error) {
	for _, u := range f.users {
		if u.Username == login || u.Email == login {
			copied := *u
			return &copied, nil
		}
	}
	return nil, apperr.ErrNotFound
}

func (f *fakeUserStore) CreateUser(user *models.User) error {
	f.nextID++
	user.ID = f.nextID
	copied := *user
	f.users[user.ID] = &copied
	return nil
}

func (f *fakeUserStore) CreateRefreshToken(token *models.RefreshToken) error {
	copied := *token
	if u, ok := f.users[token.UserID]; ok {
		copied.User = *u
	}
	f.refreshTokens[token.TokenHash] = &copied
	return nil
}

func (f *fakeUserStore) FindRefreshTokenByHash(hash string) (*models.RefreshToken, error) {
	token, ok := f.refreshTokens[hash]
	if !ok || token.Revoked {
		return nil, apperr.ErrNotFound
	}
	copied := *token
	return &copied, nil
}

func (f *fakeUserStore) RevokeRefreshTokenByHash(hash string) error {
	if token, ok := f.refreshTokens[hash]; ok {
		token.Revoked = true
	}
	return nil
}

// testEnv wires the real services and router over the fakes.
type testEnv struct {
	router   *gin.Engine
	users    *fakeUserStore
	patients *fakePatientStore
	doctors  *fakeDoctorStore
	mappings *fakeMappingStore
	audit    *fakeAuditStore
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)
	utils.InitJWT("handler-test-secret", 15*time.Minute, time.Hour)

	users := newFakeUserStore()
	patients := newFakePatientStore()
	doctors := newFakeDoctorStore()
	mappings := newFakeMappingStore(patients, doctors)
	audit := &fakeAuditStore{}

	authService := service.NewAuthService(users, audit)
	patientService := service.NewPatientService(patients, audit)
	doctorService := service.NewDoctorService(doctors, audit)
	mappingService := service.NewMappingService(mappings, patients, doctors, audit)
	dashboardService := service.NewDashboardService(patients, doctors, mappings)

	authHandler := NewAuthHandler(authService)
	patientHandler := NewPatientHandler(patientService)
	doctorHandler := NewDoctorHandler(doctorService)
	mappingHandler := NewMappingHandler(mappingService)
	dashboardHandler := NewDashboardHandler(dashboardService)

	r := gin.New()

	auth := r.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.POST("/refresh", authHandler.Refresh)
		auth.POST("/logout", authHandler.Logout)
	}

	pg := r.Group("/patients")
	pg.Use(middleware.AuthMiddleware())
	{
		pg.GET("", patientHandler.ListPatients)
		pg.POST("", patientHandler.CreatePatient)
		pg.GET("/:id", patientHandler.GetPatient)
		pg.PUT("/:id", patientHandler.UpdatePatient)
		pg.PATCH("/:id", patientHandler.UpdatePatient)
		pg.DELETE("/:id", patientHandler.DeletePatient)
	}

	dg := r.Group("/doctors")
	dg.Use(middleware.AuthMiddleware())
	{
		dg.GET("", doctorHandler.ListDoctors)
		dg.POST("", doctorHandler.CreateDoctor)
		dg.GET("/:id", doctorHandler.GetDoctor)
		dg.PUT("/:id", doctorHandler.UpdateDoctor)
		dg.PATCH("/:id", doctorHandler.UpdateDoctor)
		dg.DELETE("/:id", doctorHandler.DeleteDoctor)
	}

	mg := r.Group("/mappings")
	mg.Use(middleware.AuthMiddleware())
	{
		mg.GET("", mappingHandler.ListMappings)
		mg.POST("", mappingHandler.CreateMapping)
		mg.GET("/:id", mappingHandler.GetPatientDoctors)
		mg.DELETE("/:id", mappingHandler.RemoveMapping)
	}

	db := r.Group("/dashboard")
	db.Use(middleware.AuthMiddleware())
	{
		db.GET("/stats", dashboardHandler.GetStats)
	}

	return &testEnv{
		router:   r,
		users:    users,
		patients: patients,
		doctors:  doctors,
		mappings: mappings,
		audit:    audit,
	}
}

// seedUser registers a user directly in the fake store and returns an access token.
func (e *testEnv) seedUser(t *testing.T, email, username, name string) (uint, string) {
	t.Helper()
	user := &models.User{Email: email, Username: username, Name: name, PasswordHash: "x"}
	if err := e.users.CreateUser(user); err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
	token, err := utils.GenerateAccessToken(user.ID, user.Username)
	if err != nil {
		t.Fatalf("failed to mint token: %v", err)
	}
	return user.ID, token
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
	Field   string          `json:"field"`
}

func (e *testEnv) do(t *testing.T, method, path, token string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("failed to encode body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)

	var env envelope
	if w.Body.Len() > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
			t.Fatalf("failed to decode response %q: %v", w.Body.String(), err)
		}
	}
	return w, env
}

func validPatientBody() map[string]interface{} {
	return map[string]interface{}{
		"name":          "Jane Doe",
		"email":         "jane@x.com",
		"phone":         "+15551234567",
		"date_of_birth": "1990-01-01",
		"gender":        "F",
		"address":       "1 Main St",
	}
}

func validDoctorBody() map[string]interface{} {
	return map[string]interface{}{
		"name":                "Dr. Smith",
		"email":               "smith@clinic.example",
		"phone":               "+15559876543",
		"specialization":      "Cardiology",
		"license_number":      "LIC-1001",
		"years_of_experience": 10,
		"consultation_fee":    150.0,
		"available_from":      "09:00:00",
		"available_to":        "17:00:00",
	}
}

func mustStatus(t *testing.T, w *httptest.ResponseRecorder, want int) {
	t.Helper()
	if w.Code != want {
		t.Fatalf("expected status %d, got %d: %s", want, w.Code, w.Body.String())
	}
}
