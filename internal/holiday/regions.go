package holiday

import "time"

// regionAliases maps alternative codes onto a table key.
var regionAliases = map[string]string{
	"GB": "UK",
}

// regions holds the static rule table of every supported region.
// Adding a region is a data change here, nothing else.
var regions = map[string][]Rule{
	"US": {
		Fixed("New Year's Day", 1, 1, PolicyUSFederal),
		Nth("Martin Luther King Jr. Day", 1, time.Monday, 3, PolicyNone),
		Nth("Presidents Day", 2, time.Monday, 3, PolicyNone),
		Last("Memorial Day", 5, time.Monday, PolicyNone),
		Fixed("Juneteenth National Independence Day", 6, 19, PolicyUSFederal),
		Fixed("Independence Day", 7, 4, PolicyUSFederal),
		Nth("Labor Day", 9, time.Monday, 1, PolicyNone),
		Nth("Columbus Day", 10, time.Monday, 2, PolicyNone),
		Fixed("Veterans Day", 11, 11, PolicyUSFederal),
		Nth("Thanksgiving", 11, time.Thursday, 4, PolicyNone),
		Fixed("Christmas Day", 12, 25, PolicyUSFederal),
	},
	"UK": {
		Fixed("New Year's Day", 1, 1, PolicyNextMonday),
		Easter("Good Friday", -2, PolicyNone),
		Easter("Easter Monday", 1, PolicyNone),
		Nth("Early May Bank Holiday", 5, time.Monday, 1, PolicyNone),
		Last("Spring Bank Holiday", 5, time.Monday, PolicyNone),
		Last("Summer Bank Holiday", 8, time.Monday, PolicyNone),
		Fixed("Christmas Day", 12, 25, PolicyNextMonday),
		Fixed("Boxing Day", 12, 26, PolicyNextMonday),
	},
	"CA": {
		Fixed("New Year's Day", 1, 1, PolicyNextMonday),
		Easter("Good Friday", -2, PolicyNone),
		Special("Victoria Day", "victoria-day", PolicyNone),
		Fixed("Canada Day", 7, 1, PolicyNextMonday),
		Nth("Labour Day", 9, time.Monday, 1, PolicyNone),
		Nth("Thanksgiving Day", 10, time.Monday, 2, PolicyNone),
		Fixed("Remembrance Day", 11, 11, PolicyNone),
		Fixed("Christmas Day", 12, 25, PolicyNextMonday),
		Fixed("Boxing Day", 12, 26, PolicyNextMonday),
	},
	"AU": {
		Fixed("New Year's Day", 1, 1, PolicySundayOnlyToMonday),
		Fixed("Australia Day", 1, 26, PolicySundayOnlyToMonday),
		Easter("Good Friday", -2, PolicyNone),
		Easter("Easter Saturday", -1, PolicyNone),
		Easter("Easter Monday", 1, PolicyNone),
		Fixed("Anzac Day", 4, 25, PolicyNone),
		Nth("King's Birthday", 6, time.Monday, 2, PolicyNone),
		Fixed("Christmas Day", 12, 25, PolicySundayOnlyToMonday),
		Fixed("Boxing Day", 12, 26, PolicySundayOnlyToMonday),
	},
	"VE": {
		Fixed("Año Nuevo", 1, 1, PolicyNone),
		Easter("Lunes de Carnaval", -48, PolicyNone),
		Easter("Martes de Carnaval", -47, PolicyNone),
		Easter("Jueves Santo", -3, PolicyNone),
		Easter("Viernes Santo", -2, PolicyNone),
		Fixed("Declaración de la Independencia", 4, 19, PolicyNone),
		Fixed("Día del Trabajador", 5, 1, PolicyNone),
		Fixed("Batalla de Carabobo", 6, 24, PolicyNone),
		Fixed("Día de la Independencia", 7, 5, PolicyNone),
		Fixed("Natalicio de Simón Bolívar", 7, 24, PolicyNone),
		Fixed("Día de la Resistencia Indígena", 10, 12, PolicyNone),
		Fixed("Navidad", 12, 25, PolicyNone),
	},
	"CL": {
		Fixed("Año Nuevo", 1, 1, PolicyNone),
		Easter("Viernes Santo", -2, PolicyNone),
		Easter("Sábado Santo", -1, PolicyNone),
		Fixed("Día del Trabajo", 5, 1, PolicyNone),
		Fixed("Día de las Glorias Navales", 5, 21, PolicyNone),
		Fixed("Día Nacional de los Pueblos Indígenas", 6, 20, PolicyNone),
		Fixed("San Pedro y San Pablo", 6, 29, PolicyChileSandwich),
		Fixed("Día de la Virgen del Carmen", 7, 16, PolicyNone),
		Fixed("Asunción de la Virgen", 8, 15, PolicyNone),
		Fixed("Independencia Nacional", 9, 18, PolicyNone),
		Fixed("Día de las Glorias del Ejército", 9, 19, PolicyNone),
		Fixed("Encuentro de Dos Mundos", 10, 12, PolicyChileSandwich),
		Fixed("Día de las Iglesias Evangélicas", 10, 31, PolicyNone),
		Fixed("Día de Todos los Santos", 11, 1, PolicyNone),
		Fixed("Inmaculada Concepción", 12, 8, PolicyNone),
		Fixed("Navidad", 12, 25, PolicyNone),
	},
	"BR": {
		Fixed("Confraternização Universal", 1, 1, PolicyNone),
		Easter("Segunda-feira de Carnaval", -48, PolicyNone),
		Easter("Terça-feira de Carnaval", -47, PolicyNone),
		Easter("Sexta-feira Santa", -2, PolicyNone),
		Fixed("Tiradentes", 4, 21, PolicyNone),
		Fixed("Dia do Trabalho", 5, 1, PolicyNone),
		Easter("Corpus Christi", 60, PolicyNone),
		Fixed("Independência do Brasil", 9, 7, PolicyNone),
		Fixed("Nossa Senhora Aparecida", 10, 12, PolicyNone),
		Fixed("Finados", 11, 2, PolicyNone),
		Fixed("Proclamação da República", 11, 15, PolicyNone),
		Fixed("Natal", 12, 25, PolicyNone),
	},
}
