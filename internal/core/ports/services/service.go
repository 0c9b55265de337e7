package services

// ServiceContainer holds instances of all the application services.
// It is the entry point for handlers and CLI commands.
type ServiceContainer struct {
	Session      SessionSvcFacade
	Token        TokenSvc
	Navigation   NavigationSvc
	Dashboard    DashboardSvc
	Account      AccountSvcFacade
	Transfer     TransferFormSvc
	Approval     ApprovalSvc
	History      TransactionHistorySvc
	Interest     InterestSvc
	Group        GroupSvcFacade
	Decorator    DecoratorSvc
	User         UserSvcFacade
	Notification NotificationSvc
}
