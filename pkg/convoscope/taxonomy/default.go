package taxonomy

// Default returns the built-in Alxedo product taxonomy. Categories and
// subcategories appear in the order agreed with the analytics team; the
// classifier depends on this order for tie-breaking.
func Default() *Taxonomy {
	return New([]Entry{
		{
			Category:    "Gestión de Pedidos",
			Subcategory: "Rastreo y Estatus",
			Keywords:    []string{"pedido", "rastrear", "estatus", "guia", "donde viene", "llegado", "seguimiento", "envio", "paquete"},
		},
		{
			Category:    "Gestión de Pedidos",
			Subcategory: "Modificación y Cancelación",
			Keywords:    []string{"cambiar", "modificar", "cancelar", "dirección", "devolver", "reembolso"},
		},
		{
			Category:    "Gestión de Pedidos",
			Subcategory: "Problemas con Pedido",
			Keywords:    []string{"incompleto", "dañado", "equivocado", "problema", "falta", "error", "mal estado"},
		},
		{
			Category:    "Purificadores - Info General",
			Subcategory: "Comparativa de Modelos",
			Keywords:    []string{"diferencia", "comparar", "cual elegir", "modelos", "tipos", "mejor", "versus", "vs"},
		},
		{
			Category:    "Purificadores - Info General",
			Subcategory: "Beneficios y Características",
			Keywords:    []string{"beneficios", "ventajas", "por que comprar", "para que sirve", "ahorro", "salud", "caracteristicas", "especificaciones"},
		},
		{
			Category:    "Purificador ALX1",
			Subcategory: "Funcionalidad ALX1",
			Keywords:    []string{"alx1", "alta demanda", "conecta", "directo", "presion", "flujo continuo"},
		},
		{
			Category:    "Purificador ALX1",
			Subcategory: "App y Monitoreo",
			Keywords:    []string{"app", "aplicacion", "monitorear", "calidad", "consumo", "cartuchos", "notificaciones"},
		},
		{
			Category:    "Purificador ALX1",
			Subcategory: "Instalación ALX1",
			Keywords:    []string{"instalar alx1", "conexion", "toma de agua", "bajo tarja", "llave de paso"},
		},
		{
			Category:    "Purificador ALX2",
			Subcategory: "Funcionalidad ALX2",
			Keywords:    []string{"alx2", "portatil", "contenedor", "llenar", "6 litros", "tanque", "deposito"},
		},
		{
			Category:    "Purificador ALX2",
			Subcategory: "Agua Alcalina",
			Keywords:    []string{"alcalina", "ph", "alcalinidad", "minerales", "ionizada"},
		},
		{
			Category:    "Purificador ALX2",
			Subcategory: "Control de Temperatura",
			Keywords:    []string{"temperatura", "frio", "caliente", "4 grados", "100 grados"},
		},
		{
			Category:    "Tecnología y Filtración",
			Subcategory: "Osmosis Inversa",
			Keywords:    []string{"osmosis", "inversa", "ro", "membrana", "sales", "minerales disueltos"},
		},
		{
			Category:    "Tecnología y Filtración",
			Subcategory: "Cartuchos y Filtros",
			Keywords:    []string{"cartucho", "filtro", "sedimentos", "carbon", "vida util", "cambio", "repuesto"},
		},
		{
			Category:    "Tecnología y Filtración",
			Subcategory: "Calidad del Agua",
			Keywords:    []string{"purificada", "segura", "impurezas", "bacterias", "cloro", "sabor", "olor"},
		},
		{
			Category:    "Mantenimiento y Soporte",
			Subcategory: "Cambio de Filtros",
			Keywords:    []string{"cambiar filtro", "reemplazar cartucho", "mantenimiento", "cuando cambiar", "frecuencia"},
		},
		{
			Category:    "Mantenimiento y Soporte",
			Subcategory: "Instalación General",
			Keywords:    []string{"instalar", "instalacion", "bajo fregadero", "conexion", "plomero", "tutorial"},
		},
		{
			Category:    "Mantenimiento y Soporte",
			Subcategory: "Garantías y Soporte",
			Keywords:    []string{"garantia", "devolucion", "reparacion", "soporte", "servicio tecnico", "falla"},
		},
		{
			Category:    GeneralCategory,
			Subcategory: "Saludos y Cortesía",
			Keywords:    []string{"hola", "buenos dias", "buenas tardes", "gracias", "adios", "buenas noches"},
		},
		{
			Category:    GeneralCategory,
			Subcategory: "Consultas de Cuenta",
			Keywords:    []string{"mi cuenta", "contraseña", "datos personales", "perfil", "usuario", "registro"},
		},
		{
			Category:    UnclassifiedCategory,
			Subcategory: UnclassifiedSubcategory,
			Keywords:    []string{"otros", "miscelaneos", "sin categoria"},
		},
	})
}
