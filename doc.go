// Package lifesim models personal-finance simulations.
//
// A World holds reference data (currencies, countries, cities and
// commodities) as monthly [timeseries.TimeSeries]. A Character owns Assets
// (stocks, real estate, commodities, savings, loans and jobs), each of them
// producing two series over the period it is held:
//
//   - Value, the net worth contribution of the asset;
//   - Stream, the cash flow it produces, positive for income.
//
// Both are expressed in a common unit, grams of gold, so that assets held in
// different currencies can be compared.
//
// Scenarios, the initial state of a simulation, are read from json with
// DecodeScenario. They are the input of the lsim command line tool.
package lifesim
