package service

type DashboardService struct {
	patientStore PatientStore
	doctorStore  DoctorStore
	mappingStore MappingStore
}

func NewDashboardService(patientStore PatientStore, doctorStore DoctorStore, mappingStore MappingStore) *DashboardService {
	return &DashboardService{
		patientStore: patientStore,
		doctorStore:  doctorStore,
		mappingStore: mappingStore,
	}
}

// DashboardStats holds the caller-scoped aggregate counts
type DashboardStats struct {
	TotalPatients       int64 `json:"total_patients"`
	TotalDoctors        int64 `json:"total_doctors"`
	TotalActiveMappings int64 `json:"total_active_mappings"`
}

// Stats computes the dashboard counts: patients owned by the caller, doctors
// globally, and active mappings whose patient the caller owns. Read-only.
func (s *DashboardService) Stats(callerID uint) (*DashboardStats, error) {
	patients, err := s.patientStore.CountByOwner(callerID)
	if err != nil {
		return nil, err
	}

	doctors, err := s.doctorStore.CountAll()
	if err != nil {
		return nil, err
	}

	mappings, err := s.mappingStore.CountActiveByOwner(callerID)
	if err != nil {
		return nil, err
	}

	return &DashboardStats{
		TotalPatients:       patients,
		TotalDoctors:        doctors,
		TotalActiveMappings: mappings,
	}, nil
}
