package payoff

// SimulateSingleAccount projects one account twice, with and without the
// extra monthly contribution, and aligns both projections on a shared
// timeline. Where the faster projection has already ended, its balance reads
// as zero. A single account leaves the comparator nothing to choose
// between, so both runs use the avalanche order.
func (e *Engine) SimulateSingleAccount(account Account, extraMonthly float64) SingleAccountResult {
	withoutExtra := e.RunSimulation([]Account{account}, 0, StrategyAvalanche)
	withExtra := e.RunSimulation([]Account{account}, extraMonthly, StrategyAvalanche)

	months := withoutExtra.TotalMonths
	if withExtra.TotalMonths > months {
		months = withExtra.TotalMonths
	}
	timeline := make([]SingleAccountPoint, 0, months)
	for month := 1; month <= months; month++ {
		point := SingleAccountPoint{Month: month}
		if month <= withoutExtra.TotalMonths {
			point.BalanceWithoutExtra = withoutExtra.Timeline[month-1].TotalBalance
		}
		if month <= withExtra.TotalMonths {
			point.BalanceWithExtra = withExtra.Timeline[month-1].TotalBalance
		}
		timeline = append(timeline, point)
	}

	return SingleAccountResult{
		WithoutExtra:  outcomeOf(withoutExtra),
		WithExtra:     outcomeOf(withExtra),
		Timeline:      timeline,
		MonthsSaved:   withoutExtra.TotalMonths - withExtra.TotalMonths,
		InterestSaved: withoutExtra.TotalInterestPaid - withExtra.TotalInterestPaid,
	}
}

func outcomeOf(result SimulationResult) SingleAccountOutcome {
	return SingleAccountOutcome{
		Months:            result.TotalMonths,
		TotalInterestPaid: result.TotalInterestPaid,
		TotalAmountPaid:   result.TotalAmountPaid,
	}
}
