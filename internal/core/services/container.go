package services

import (
	"time"

	portsrepo "github.com/smallbooks/smallbooks/internal/core/ports/repositories"
	portssvc "github.com/smallbooks/smallbooks/internal/core/ports/services"
)

// NewServiceContainer wires every service over the given repositories and
// external providers and returns the container the handlers consume.
func NewServiceContainer(
	accountRepo portsrepo.AccountRepository,
	voucherRepo portsrepo.VoucherRepository,
	suggester portssvc.SuggestionProvider,
	adviser portssvc.AdviceProvider,
	providerTimeout time.Duration,
) *portssvc.ServiceContainer {
	reporting := NewReportingService(accountRepo, voucherRepo)
	return &portssvc.ServiceContainer{
		Chart:     NewChartService(accountRepo, voucherRepo),
		Voucher:   NewVoucherService(voucherRepo, accountRepo),
		Ledger:    NewLedgerService(accountRepo, voucherRepo),
		Reporting: reporting,
		Advisory:  NewAdvisoryService(accountRepo, reporting, suggester, adviser, providerTimeout),
	}
}
