package services

// ServiceContainer holds every service facade the handlers depend on.
type ServiceContainer struct {
	Chart     ChartSvcFacade
	Voucher   VoucherSvcFacade
	Ledger    LedgerSvcFacade
	Reporting ReportingSvcFacade
	Advisory  AdvisorySvcFacade
}
