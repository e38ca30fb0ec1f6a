package dataset_test

import (
	"fmt"
	"strings"
)

// energyCSV builds a small file in the layout of the OWID energy dataset.
// GDP is missing after 2016 and renewables before 1990, as in the real data.
func energyCSV(countries ...string) string {
	var b strings.Builder
	b.WriteString("iso_code,country,year,population,gdp," +
		"renewables_energy_per_capita,fossil_energy_per_capita,coal_share\n")
	for ci, c := range countries {
		for y := 1965; y <= 2020; y++ {
			gdp := ""
			if y <= 2016 {
				gdp = fmt.Sprintf("%.1f", 1e12*float64(ci+1)+2e10*float64(y-1965))
			}
			ren := "NA"
			if y >= 1990 {
				ren = fmt.Sprintf("%.3f", 100*float64(ci+1)+float64(y-1990)*3.5)
			}
			fos := fmt.Sprintf("%.3f", 40000-float64(y-1965)*50*float64(ci+1))
			fmt.Fprintf(&b, "%s,%s,%d,%d,%s,%s,%s,\n",
				strings.ToUpper(c[:3]), c, y, 1000000*(ci+1), gdp, ren, fos)
		}
	}
	return b.String()
}
