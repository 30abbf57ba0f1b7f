package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/lifesim"
	"github.com/etnz/lifesim/date"
	"github.com/etnz/lifesim/timeseries"
	md "github.com/nao1215/markdown"
)

// ValuationMarkdown renders the valuation table.
func ValuationMarkdown(v *Valuation) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("%s %s in %s", v.Period, v.Measure, v.Unit))

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft},
		Header:    []string{v.Period.Name()},
		Rows:      [][]string{},
	}
	for _, name := range v.Assets {
		table.Alignment = append(table.Alignment, md.AlignRight)
		table.Header = append(table.Header, name)
	}
	for _, r := range v.Rows {
		row := []string{r.Range.Identifier()}
		for _, value := range r.Values {
			if value == nil {
				row = append(row, "")
				continue
			}
			row = append(row, v.Unit.Format(*value))
		}
		table.Rows = append(table.Rows, row)
	}
	doc.Table(table)

	return doc.String()
}

// SeriesMarkdown renders a single series folded by period p.
func SeriesMarkdown(title string, ts timeseries.TimeSeries, p date.Period, agg timeseries.Aggregation, format func(float64) string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(title)
	doc.PlainText(fmt.Sprintf("From %s to %s, %d months.", ts.Start(), ts.End(), ts.Len())).LF()

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{p.Name(), "Value"},
		Rows:      [][]string{},
	}
	for _, b := range ts.Resample(p, agg) {
		table.Rows = append(table.Rows, []string{b.Range.Identifier(), format(b.Value)})
	}
	doc.Table(table)

	return doc.String()
}

// AssetsMarkdown renders the list of assets.
func AssetsMarkdown(assets []*lifesim.Asset) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Assets")
	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignLeft,
		},
		Header: []string{"Name", "Kind", "Currency", "Purchase", "Sale", "Initial Value", "Details"},
		Rows:   [][]string{},
	}
	for _, a := range assets {
		sale := ""
		if !a.SaleDate.IsZero() {
			sale = a.SaleDate.String()
		}
		table.Rows = append(table.Rows, []string{
			md.Bold(a.Name),
			a.Kind.String(),
			a.Currency.Name,
			a.PurchaseDate.String(),
			sale,
			lifesim.M(a.InitialValue, a.Currency.Name).String(),
			details(a),
		})
	}
	doc.Table(table)

	return doc.String()
}

// details describes the kind specific part of an asset.
func details(a *lifesim.Asset) string {
	switch a.Kind {
	case lifesim.KindStock:
		return fmt.Sprintf("%s stock index", a.Stock.Country.Name)
	case lifesim.KindRealEstate:
		return fmt.Sprintf("%g m² in %s", a.RealEstate.SurfaceSqm, a.RealEstate.City.Name)
	case lifesim.KindCommodity:
		return a.Commodity.Commodity.Name
	case lifesim.KindLoan:
		return fmt.Sprintf("repaid until %s", a.Loan.EndDate)
	case lifesim.KindJob:
		return fmt.Sprintf("saves %s monthly", lifesim.M(a.Job.MonthlySaving, a.Currency.Name))
	default:
		return ""
	}
}
