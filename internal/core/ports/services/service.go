package services

// ServiceContainer holds instances of all the application services.
// It is populated at startup and handed to the route registration.
type ServiceContainer struct {
	Loan       LoanSvcFacade
	Commission CommissionSvcFacade
	Schedule   ScheduleSvcFacade
}
