package locale

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Message keys. The English text doubles as the key.
const (
	MsgWelcome        = "Welcome to the Financial Analyzer"
	MsgSelectAsset    = "Please select one of your Permanent Portfolio assets:"
	MsgCustomOption   = "Enter a custom ticker"
	MsgChoicePrompt   = "Enter the number of your choice: "
	MsgTickerPrompt   = "Enter the ticker symbol: "
	MsgInvalidOption  = "Invalid option."
	MsgInvalidExit    = "Exiting program due to invalid selection."
	MsgAgainPrompt    = "Would you like to analyze another asset? (y/n): "
	MsgTerminated     = "Program terminated."
	MsgProcessing     = "Processing ticker: %s"
	MsgNoData         = "No data retrieved for %s. Please check the symbol or your connection."
	MsgSample         = "Sample data for %s:"
	MsgTotalReturn    = "Total return over %d years: %.2f%%"
	MsgAnnualReturn   = "Annualized return: %.2f%%"
	MsgGeoMean        = "Geometric mean of closing price: %.2f"
	MsgExported       = "Data successfully exported to '%s'."
	MsgExportError    = "Error exporting CSV: %v"
	MsgChartError     = "Error rendering chart: %v"
	MsgChartTitle     = "%d-Year Chart: %s"
	MsgClosingPrice   = "Closing Price"
	MsgPriceAxis      = "Price ($)"
	MsgDailyReturn    = "Daily Return (%%)"
	MsgDateAxis       = "Date"
	MsgPercentAxis    = "Percentage (%%)"
	MsgCloseChart     = "Press Enter to close the chart..."
	MsgHeaderDate     = MsgDateAxis // shares the axis translation
	MsgHeaderOpen     = "Open"
	MsgHeaderHigh     = "High"
	MsgHeaderLow      = "Low"
	MsgHeaderClose    = "Close"
	MsgHeaderVolume   = "Volume"
	MsgHeaderDividend = "Dividends"
	MsgHeaderSplits   = "Stock Splits"
	MsgHeaderReturn   = "Daily Return"
)

var spanish = map[string]string{
	MsgWelcome:        "Bienvenido al Analizador Financiero",
	MsgSelectAsset:    "Seleccione uno de los activos de su Cartera Permanente:",
	MsgCustomOption:   "Introducir un ticker personalizado",
	MsgChoicePrompt:   "Introduzca el número de su elección: ",
	MsgTickerPrompt:   "Introduzca el símbolo del ticker: ",
	MsgInvalidOption:  "Opción no válida.",
	MsgInvalidExit:    "Saliendo del programa por selección no válida.",
	MsgAgainPrompt:    "¿Desea analizar otro activo? (s/n): ",
	MsgTerminated:     "Programa finalizado.",
	MsgProcessing:     "Procesando ticker: %s",
	MsgNoData:         "No se obtuvieron datos para %s. Compruebe el símbolo o su conexión.",
	MsgSample:         "Muestra de datos de %s:",
	MsgTotalReturn:    "Rentabilidad total en %d años: %.2f%%",
	MsgAnnualReturn:   "Rentabilidad anualizada: %.2f%%",
	MsgGeoMean:        "Media geométrica del precio de cierre: %.2f",
	MsgExported:       "Datos exportados correctamente a '%s'.",
	MsgExportError:    "Error al exportar el CSV: %v",
	MsgChartError:     "Error al generar el gráfico: %v",
	MsgChartTitle:     "Gráfico de %d años: %s",
	MsgClosingPrice:   "Precio de cierre",
	MsgPriceAxis:      "Precio ($)",
	MsgDailyReturn:    "Rentabilidad diaria (%%)",
	MsgDateAxis:       "Fecha",
	MsgPercentAxis:    "Porcentaje (%%)",
	MsgCloseChart:     "Pulse Intro para cerrar el gráfico...",
	MsgHeaderOpen:     "Apertura",
	MsgHeaderHigh:     "Máximo",
	MsgHeaderLow:      "Mínimo",
	MsgHeaderClose:    "Cierre",
	MsgHeaderVolume:   "Volumen",
	MsgHeaderDividend: "Dividendos",
	MsgHeaderSplits:   "Splits",
	MsgHeaderReturn:   "Rentabilidad diaria",
}

func init() {
	for key, msg := range spanish {
		if err := message.SetString(language.Spanish, key, msg); err != nil {
			panic(err)
		}
	}
}
