package lifesim

import (
	"errors"
	"testing"

	"github.com/etnz/lifesim/date"
	"github.com/etnz/lifesim/timeseries"
)

func TestStockValue(t *testing.T) {
	eur := euro(t)
	stock := &Asset{
		Name:         "dax",
		Kind:         KindStock,
		InitialValue: 100,
		PurchaseDate: jan2024,
		SaleDate:     dec2024,
		Currency:     eur,
		Stock:        &Stock{Country: germany(t, eur)},
	}

	value, err := stock.Value(dec2024)
	if err != nil {
		t.Fatalf("Value() error = %v", err)
	}
	if value.Len() != date.Months(jan2024, dec2024) {
		t.Errorf("Value().Len() = %v, want %v", value.Len(), date.Months(jan2024, dec2024))
	}
	if got, _ := value.At(jan2024); !near(got, 100.0/10) {
		t.Errorf("Value().At(%v) = %v, want %v", jan2024, got, 100.0/10)
	}
	// second month stock have increased by 1.2%
	if got, _ := value.At(date.New(2024, 2, 1)); !near(got, 100*1.012/10) {
		t.Errorf("Value().At(2024-02-01) = %v, want %v", got, 100*1.012/10)
	}

	stream, err := stock.Stream(dec2024)
	if err != nil {
		t.Fatalf("Stream() error = %v", err)
	}
	if stream.Sum() != 0 {
		t.Errorf("Stream().Sum() = %v, want 0", stream.Sum())
	}
}

func TestStockPurchasedLater(t *testing.T) {
	eur := euro(t)
	stock := &Asset{
		Name:         "dax",
		Kind:         KindStock,
		InitialValue: 100,
		PurchaseDate: date.New(2024, 6, 15),
		Currency:     eur,
		Stock:        &Stock{Country: germany(t, eur)},
	}
	value, err := stock.Value(date.New(2024, 9, 30))
	if err != nil {
		t.Fatalf("Value() error = %v", err)
	}
	if value.Start() != date.New(2024, 6, 15) || value.End() != date.New(2024, 9, 30) {
		t.Errorf("Value() = %v, want 2024-06-15..2024-09-30", value.Range())
	}
	if !near(value.First(), 10) {
		t.Errorf("Value().First() = %v, want 10", value.First())
	}
}

func TestJobStream(t *testing.T) {
	eur := euro(t)
	job := &Asset{
		Name:         "engineer",
		Kind:         KindJob,
		InitialValue: -1000,
		PurchaseDate: jan2024,
		SaleDate:     dec2024,
		Currency:     eur,
		Job:          &Job{MonthlySaving: 300},
	}
	stream, err := job.Stream(dec2024)
	if err != nil {
		t.Fatalf("Stream() error = %v", err)
	}
	want, _ := timeseries.Constant(30, jan2024, dec2024)
	if !stream.Equal(want, 1e-9) {
		t.Errorf("Stream() = %v, want %v", stream.Samples(), want.Samples())
	}
	value, _ := job.Value(dec2024)
	if value.Sum() != 0 {
		t.Errorf("Value().Sum() = %v, want 0", value.Sum())
	}
}

func TestRealEstate(t *testing.T) {
	eur := euro(t)
	city := &City{
		Name:                   "Berlin",
		Country:                germany(t, eur),
		SqmHousingPrice:        constant(t, 5000),
		YearlyRentToPriceIndex: constant(t, 0.048),
	}
	flat := &Asset{
		Name:         "flat",
		Kind:         KindRealEstate,
		InitialValue: 250000,
		PurchaseDate: jan2024,
		Currency:     eur,
		RealEstate:   &RealEstate{City: city, SurfaceSqm: 50},
	}
	value, err := flat.Value(dec2024)
	if err != nil {
		t.Fatalf("Value() error = %v", err)
	}
	if !near(value.First(), 25000) {
		t.Errorf("Value().First() = %v, want 25000", value.First())
	}
	stream, err := flat.Stream(dec2024)
	if err != nil {
		t.Fatalf("Stream() error = %v", err)
	}
	// monthly rent is 250000 * 4.8% / 12 = 1000 EUR = 100 g
	if !near(stream.Last(), 100) {
		t.Errorf("Stream().Last() = %v, want 100", stream.Last())
	}
	// acquisition costs are 9% of 250000 EUR = 2250 g
	if !near(stream.First(), 100-2250) {
		t.Errorf("Stream().First() = %v, want %v", stream.First(), 100-2250)
	}
}

func TestRealEstateForeignCurrency(t *testing.T) {
	eur := euro(t)
	usd := &Currency{Name: "USD", InterestRate: constant(t, 0.05), UnitsPerGram: constant(t, 1)}
	city := &City{
		Name:                   "Berlin",
		Country:                germany(t, eur),
		SqmHousingPrice:        constant(t, 1000),
		YearlyRentToPriceIndex: constant(t, 0.04),
	}
	flat := &Asset{
		Name:         "flat",
		Kind:         KindRealEstate,
		InitialValue: 1000,
		PurchaseDate: jan2024,
		Currency:     usd,
		RealEstate:   &RealEstate{City: city, SurfaceSqm: 1},
	}
	if err := flat.Validate(); err == nil {
		t.Error("Validate() of a USD flat in Berlin, want error")
	}
	if _, err := flat.Value(dec2024); err == nil {
		t.Error("Value() of a USD flat in Berlin, want error")
	}
}

func TestRealEstateRentNotCovered(t *testing.T) {
	eur := euro(t)
	june := date.New(2024, 6, 1)
	ratio, _ := timeseries.Constant(0.12, june, dec2024)
	city := &City{
		Name:                   "Berlin",
		Country:                germany(t, eur),
		SqmHousingPrice:        constant(t, 1000),
		YearlyRentToPriceIndex: ratio,
	}
	flat := &Asset{
		Name:         "flat",
		Kind:         KindRealEstate,
		InitialValue: 1000,
		PurchaseDate: jan2024,
		Currency:     eur,
		RealEstate:   &RealEstate{City: city, SurfaceSqm: 1},
	}
	if _, err := flat.Stream(dec2024); !errors.Is(err, timeseries.ErrRangeNotContained) {
		t.Errorf("Stream() error = %v, want %v", err, timeseries.ErrRangeNotContained)
	}

	// bought when the rent index starts: the costs are paid on the purchase month.
	flat.PurchaseDate = june
	stream, err := flat.Stream(dec2024)
	if err != nil {
		t.Fatalf("Stream() error = %v", err)
	}
	if stream.Start() != june || stream.Len() != 7 {
		t.Errorf("Stream() = %v..%v, want %v..%v", stream.Start(), stream.End(), june, dec2024)
	}
	// rent is 1000 * 12% / 12 = 10 EUR = 1 g, costs are 9% of 1000 EUR = 9 g.
	if !near(stream.First(), 1-9) || !near(stream.Last(), 1) {
		t.Errorf("Stream() = %v, want [-8 1 ... 1]", stream.Samples())
	}
}

// Reference series starting later in the purchase month still price the purchase.
func TestPurchaseMidMonthSeries(t *testing.T) {
	fifteenth := date.New(2024, 1, 15)
	fx, _ := timeseries.Constant(10, fifteenth, dec2024)
	free, _ := timeseries.Constant(0, fifteenth, dec2024)
	eur := &Currency{Name: "EUR", InterestRate: free, UnitsPerGram: fx}

	prices, _ := timeseries.Linear(80, 20, jan2024, date.New(2024, 2, 1))
	bundle := &Asset{
		Name:         "silver",
		Kind:         KindCommodity,
		InitialValue: 1000,
		PurchaseDate: jan2024,
		SaleDate:     date.New(2024, 2, 1),
		Currency:     eur,
		Commodity:    &CommodityBundle{Commodity: &Commodity{Name: "silver", UnitsPerGram: prices}},
	}
	value, err := bundle.Value(dec2024)
	if err != nil {
		t.Fatalf("commodity Value() error = %v", err)
	}
	if !near(value.First(), 100) || !near(value.Last(), 80) {
		t.Errorf("commodity Value() = %v, want [100 80]", value.Samples())
	}

	loan := &Asset{
		Name:         "mortgage",
		Kind:         KindLoan,
		InitialValue: -1200,
		PurchaseDate: jan2024,
		Currency:     eur,
		Loan:         &Loan{EndDate: dec2024},
	}
	stream, err := loan.Stream(dec2024)
	if err != nil {
		t.Fatalf("loan Stream() error = %v", err)
	}
	if !near(stream.Sum(), -120) {
		t.Errorf("loan Stream().Sum() = %v, want -120", stream.Sum())
	}
}

func TestCommodity(t *testing.T) {
	eur := euro(t)
	// silver gets cheaper: 80 then 100 ounces per gram of gold.
	prices, _ := timeseries.Linear(80, 20, jan2024, date.New(2024, 2, 1))
	silver := &Commodity{Name: "silver", UnitsPerGram: prices}
	bundle := &Asset{
		Name:         "silver",
		Kind:         KindCommodity,
		InitialValue: 1000,
		PurchaseDate: jan2024,
		SaleDate:     date.New(2024, 2, 1),
		Currency:     eur,
		Commodity:    &CommodityBundle{Commodity: silver},
	}
	value, err := bundle.Value(dec2024)
	if err != nil {
		t.Fatalf("Value() error = %v", err)
	}
	// 1000 EUR is 100 g of gold, or 8000 ounces, worth 80 g the month after.
	if value.Len() != 2 || !near(value.First(), 100) || !near(value.Last(), 80) {
		t.Errorf("Value() = %v, want [100 80]", value.Samples())
	}
}

func TestSaving(t *testing.T) {
	eur := euro(t)
	saving := &Asset{
		Name:         "livret",
		Kind:         KindSaving,
		InitialValue: 1000,
		PurchaseDate: jan2024,
		Currency:     eur,
		Saving:       &Saving{},
	}
	value, err := saving.Value(date.New(2024, 3, 31))
	if err != nil {
		t.Fatalf("Value() error = %v", err)
	}
	want := []float64{100, 100 * 1.0025, 100 * 1.0025 * 1.0025}
	for i, v := range value.Samples() {
		if !near(v, want[i]) {
			t.Errorf("Value().Samples()[%d] = %v, want %v", i, v, want[i])
		}
	}
}

func TestLoan(t *testing.T) {
	eur := euro(t)
	eur.InterestRate = constant(t, 0) // interest free
	loan := &Asset{
		Name:         "mortgage",
		Kind:         KindLoan,
		InitialValue: -1200,
		PurchaseDate: jan2024,
		Currency:     eur,
		Loan:         &Loan{EndDate: dec2024},
	}
	value, err := loan.Value(date.New(2030, 1, 1))
	if err != nil {
		t.Fatalf("Value() error = %v", err)
	}
	if value.End() != dec2024 {
		t.Errorf("Value().End() = %v, want %v", value.End(), dec2024)
	}
	if !near(value.First(), -110) || value.Last() != 0 {
		t.Errorf("Value() = %v, want -110 ... 0", value.Samples())
	}
	stream, _ := loan.Stream(dec2024)
	if !near(stream.Sum(), -120) {
		t.Errorf("Stream().Sum() = %v, want -120", stream.Sum())
	}
}

func TestLoanWithInterest(t *testing.T) {
	eur := euro(t)
	loan := &Asset{
		Name:         "mortgage",
		Kind:         KindLoan,
		InitialValue: -10000,
		PurchaseDate: jan2024,
		Currency:     eur,
		Loan:         &Loan{EndDate: dec2024},
	}
	stream, err := loan.Stream(dec2024)
	if err != nil {
		t.Fatalf("Stream() error = %v", err)
	}
	value, _ := loan.Value(dec2024)
	if value.Last() != 0 {
		t.Errorf("Value().Last() = %v, want 0", value.Last())
	}
	// total repaid exceeds the principal by the interests.
	paid := -stream.Sum() * 10
	if paid <= 10000 || paid > 10000*(1+0.03) {
		t.Errorf("total paid = %v, want in (10000, 10300]", paid)
	}
	samples := stream.Samples()
	for i := 1; i < len(samples)-1; i++ {
		if !near(samples[i], samples[0]) {
			t.Errorf("payment %d = %v, want constant %v", i, samples[i], samples[0])
		}
	}
}

func TestLoanRepaidEarly(t *testing.T) {
	eur := euro(t)
	eur.InterestRate = constant(t, 0)
	loan := &Asset{
		Name:         "mortgage",
		Kind:         KindLoan,
		InitialValue: -1200,
		PurchaseDate: jan2024,
		SaleDate:     date.New(2024, 6, 30),
		Currency:     eur,
		Loan:         &Loan{EndDate: dec2024},
	}
	value, err := loan.Value(dec2024)
	if err != nil {
		t.Fatalf("Value() error = %v", err)
	}
	stream, _ := loan.Stream(dec2024)
	if value.Len() != 6 || value.Last() != 0 {
		t.Errorf("Value() = %v, want 6 months ending at 0", value.Samples())
	}
	// 5 payments of 10 g, then 10 g plus the remaining 60 g.
	if !near(stream.Last(), -70) || !near(stream.Sum(), -120) {
		t.Errorf("Stream() = %v, want five -10 then -70", stream.Samples())
	}
}

func TestValuationErrors(t *testing.T) {
	eur := euro(t)
	testCases := []struct {
		name  string
		asset *Asset
		want  error
	}{
		{"sold before purchase", &Asset{
			Name: "job", Kind: KindJob, PurchaseDate: dec2024, SaleDate: jan2024, Currency: eur, Job: &Job{},
		}, timeseries.ErrDateOrder},
		{"held beyond reference data", &Asset{
			Name: "dax", Kind: KindStock, PurchaseDate: jan2024, SaleDate: date.New(2025, 6, 1), Currency: eur,
			Stock: &Stock{Country: germany(t, eur)},
		}, timeseries.ErrRangeNotContained},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := tc.asset.Value(dec2024); !errors.Is(err, tc.want) {
				t.Errorf("Value() error = %v, want %v", err, tc.want)
			}
		})
	}

	missing := &Asset{Name: "dax", Kind: KindStock, PurchaseDate: jan2024, Currency: eur}
	if _, err := missing.Value(dec2024); err == nil {
		t.Errorf("Value() without stock details error = nil, want error")
	}
}

func TestParseKind(t *testing.T) {
	for k := KindStock; k <= KindJob; k++ {
		got, err := ParseKind(k.String())
		if err != nil || got != k {
			t.Errorf("ParseKind(%q) = %v, %v want %v", k.String(), got, err, k)
		}
	}
	if _, err := ParseKind("bond"); err == nil {
		t.Errorf("ParseKind(%q) error = nil, want error", "bond")
	}
}
