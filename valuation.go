package lifesim

import (
	"fmt"
	"math"

	"github.com/etnz/lifesim/date"
	"github.com/etnz/lifesim/timeseries"
)

// Value returns the net worth contribution of the asset over its holding
// period, in grams of gold.
func (a *Asset) Value(horizon date.Date) (timeseries.TimeSeries, error) {
	value, _, err := a.valuation(horizon)
	return value, err
}

// Stream returns the cash flow produced by the asset over its holding
// period, in grams of gold. Income is positive, expenses are negative.
func (a *Asset) Stream(horizon date.Date) (timeseries.TimeSeries, error) {
	_, stream, err := a.valuation(horizon)
	return stream, err
}

// valuation computes both series in the asset currency, then converts them to gold.
func (a *Asset) valuation(horizon date.Date) (value, stream timeseries.TimeSeries, err error) {
	if err := a.Validate(); err != nil {
		return value, stream, err
	}
	h, err := a.Holding(horizon)
	if err != nil {
		return value, stream, fmt.Errorf("asset %q: %w", a.Name, err)
	}

	switch a.Kind {
	case KindStock:
		value, stream, err = a.stock(h)
	case KindRealEstate:
		value, stream, err = a.realEstate(h)
	case KindCommodity:
		value, stream, err = a.commodity(h)
	case KindSaving:
		value, stream, err = a.saving(h)
	case KindLoan:
		value, stream, err = a.loan(h)
	case KindJob:
		value, stream, err = a.job(h)
	default:
		err = fmt.Errorf("unknown asset kind %v", a.Kind)
	}
	if err != nil {
		return value, stream, fmt.Errorf("asset %q: %w", a.Name, err)
	}

	if value, err = a.Currency.ToGold(value); err != nil {
		return value, stream, fmt.Errorf("asset %q: %w", a.Name, err)
	}
	if stream, err = a.Currency.ToGold(stream); err != nil {
		return value, stream, fmt.Errorf("asset %q: %w", a.Name, err)
	}
	return value, stream, nil
}

// relative returns ts over h, scaled so that its sample at h.From is 1.
func relative(ts timeseries.TimeSeries, h date.Range) (timeseries.TimeSeries, error) {
	held, err := ts.Slice(h.From, h.To)
	if err != nil {
		return held, err
	}
	if held.First() == 0 {
		return held, &timeseries.DivisionByZeroError{On: h.From}
	}
	return held.Scale(1 / held.First()), nil
}

// monthOf returns the sample of ts for the month of d.
func monthOf(ts timeseries.TimeSeries, d date.Date) (float64, error) {
	held, err := ts.Slice(d, d)
	if err != nil {
		return 0, err
	}
	return held.First(), nil
}

// stock follows the country stock index from the purchase date.
func (a *Asset) stock(h date.Range) (value, stream timeseries.TimeSeries, err error) {
	growth, err := relative(a.Stock.Country.StockIndex, h)
	if err != nil {
		return value, stream, err
	}
	stream, err = timeseries.Constant(0, h.From, h.To)
	return growth.Scale(a.InitialValue), stream, err
}

// realEstate values the surface at the city price and earns the rent, minus
// the acquisition costs paid on the purchase month.
func (a *Asset) realEstate(h date.Range) (value, stream timeseries.TimeSeries, err error) {
	city := a.RealEstate.City
	price, err := city.SqmHousingPrice.Slice(h.From, h.To)
	if err != nil {
		return value, stream, err
	}
	value = price.Scale(a.RealEstate.SurfaceSqm)

	ratio, err := city.YearlyRentToPriceIndex.Slice(h.From, h.To)
	if err != nil {
		return value, stream, err
	}
	rent, err := value.Mul(ratio)
	if err != nil {
		return value, stream, err
	}
	stream = rent.Scale(1.0 / 12)
	cost := a.InitialValue * city.Country.RealEstateAcquisitionCostPercentage / 100
	return value, stream.WithFirst(stream.First() - cost), nil
}

// commodity buys units of commodity at the purchase date and follows their
// price in gold, expressed back in the asset currency.
func (a *Asset) commodity(h date.Range) (value, stream timeseries.TimeSeries, err error) {
	unitsPerGram, err := a.Commodity.Commodity.UnitsPerGram.Slice(h.From, h.To)
	if err != nil {
		return value, stream, err
	}
	fx, err := monthOf(a.Currency.UnitsPerGram, h.From)
	if err != nil {
		return value, stream, err
	}
	if fx == 0 {
		return value, stream, &timeseries.DivisionByZeroError{On: h.From}
	}
	units := a.InitialValue / fx * unitsPerGram.First()

	held, err := timeseries.Constant(units, h.From, h.To)
	if err != nil {
		return value, stream, err
	}
	grams, err := held.Div(unitsPerGram)
	if err != nil {
		return value, stream, err
	}
	// grams of gold are converted back in currency, to be converted to gold
	// with the other assets.
	if value, err = a.Currency.FromGold(grams); err != nil {
		return value, stream, err
	}
	stream, err = timeseries.Constant(0, h.From, h.To)
	return value, stream, err
}

// saving compounds the currency interest rate monthly.
func (a *Asset) saving(h date.Range) (value, stream timeseries.TimeSeries, err error) {
	rates, err := a.Currency.InterestRate.Slice(h.From, h.To)
	if err != nil {
		return value, stream, err
	}
	stream, err = timeseries.Constant(0, h.From, h.To)
	return rates.Growth(12).Scale(a.InitialValue), stream, err
}

// loan repays the principal with constant monthly payments at the currency
// interest rate of the purchase date, over the months up to the loan end
// date. The last payment is adjusted to clear the balance exactly. When the
// loan is repaid early (sold) the remaining balance is paid on the sale
// month.
func (a *Asset) loan(h date.Range) (value, stream timeseries.TimeSeries, err error) {
	yearly, err := monthOf(a.Currency.InterestRate, a.PurchaseDate)
	if err != nil {
		return value, stream, err
	}
	r := yearly / 12
	principal := math.Abs(a.InitialValue)
	n := date.Months(a.PurchaseDate, a.Loan.EndDate)

	payment := principal / float64(n)
	if r != 0 {
		payment = principal * r / (1 - math.Pow(1+r, -float64(n)))
	}

	balances := make([]float64, n)
	balance := principal
	for t := range balances {
		balance = balance*(1+r) - payment
		balances[t] = -balance
	}
	// balances[n-1] is the rounding residual of the annuity.
	residual := -balances[n-1]
	balances[n-1] = 0

	if value, err = timeseries.New(a.PurchaseDate, a.Loan.EndDate, balances); err != nil {
		return value, stream, err
	}
	full, err := timeseries.Constant(-payment, a.PurchaseDate, a.Loan.EndDate)
	if err != nil {
		return value, stream, err
	}
	stream = full.WithLast(-payment - residual)

	if h.To == a.Loan.EndDate {
		return value, stream, nil
	}
	// early repayment
	if value, err = value.Slice(h.From, h.To); err != nil {
		return value, stream, err
	}
	if stream, err = stream.Slice(h.From, h.To); err != nil {
		return value, stream, err
	}
	return value.WithLast(0), stream.WithLast(stream.Last() + value.Last()), nil
}

// job saves a constant amount every month.
func (a *Asset) job(h date.Range) (value, stream timeseries.TimeSeries, err error) {
	if value, err = timeseries.Constant(0, h.From, h.To); err != nil {
		return value, stream, err
	}
	stream, err = timeseries.Constant(a.Job.MonthlySaving, h.From, h.To)
	return value, stream, err
}
