package catalog

// Catálogo embebido de la clínica. Hasta que el backend clínico exponga
// su propio catálogo (ver adapters/catalog/remote), esta es la fuente
// por defecto.

func defaultServices() []Service {
	return []Service{
		{ID: "1", Name: "Radiografía Digital", Description: "Imágenes de alta resolución para diagnóstico de fracturas y lesiones.", Price: 150, Duration: "30 min", Category: CategoryDiagnostic, Icon: "scan"},
		{ID: "2", Name: "Ecografía Abdominal", Description: "Evaluación no invasiva de órganos internos.", Price: 200, Duration: "45 min", Category: CategoryDiagnostic, Icon: "activity"},
		{ID: "3", Name: "Análisis de Laboratorio", Description: "Hemograma completo, perfil bioquímico y análisis de orina.", Price: 120, Duration: "20 min", Category: CategoryDiagnostic, Icon: "droplet"},
		{ID: "4", Name: "Cirugía de Tejidos Blandos", Description: "Procedimientos quirúrgicos generales con anestesia monitoreada.", Price: 800, Duration: "2 h", Category: CategorySurgery, Icon: "scissors"},
		{ID: "5", Name: "Limpieza Dental", Description: "Profilaxis dental completa bajo sedación ligera.", Price: 300, Duration: "1 h", Category: CategoryCare, Icon: "smile"},
		{ID: "6", Name: "Cirugía Ortopédica", Description: "Corrección de fracturas y problemas articulares.", Price: 1200, Duration: "3 h", Category: CategorySurgery, Icon: "bone"},
		{ID: "7", Name: "Hospitalización", Description: "Internación con monitoreo continuo y cuidados de enfermería.", Price: 250, Duration: "24 h", Category: CategoryCare, Icon: "bed"},
		{ID: "8", Name: "Vacunación", Description: "Plan de vacunas según especie, edad e historial.", Price: 80, Duration: "15 min", Category: CategoryCare, Icon: "syringe"},
		{ID: "9", Name: "Desparasitación", Description: "Tratamiento antiparasitario interno y externo.", Price: 60, Duration: "15 min", Category: CategoryCare, Icon: "pill"},
		{ID: "10", Name: "Emergencias 24h", Description: "Atención de urgencias a toda hora, todos los días.", Price: 350, Duration: "variable", Category: CategoryEmergency, Icon: "siren"},
		{ID: "11", Name: "Peluquería y Estética", Description: "Baño, corte y cuidado del pelaje.", Price: 90, Duration: "1 h", Category: CategoryCare, Icon: "scissors-line-dashed"},
		{ID: "12", Name: "Consulta General", Description: "Examen clínico completo y plan de tratamiento.", Price: 100, Duration: "30 min", Category: CategoryCare, Icon: "stethoscope"},
		{ID: "13", Name: "Cardiología", Description: "Electrocardiograma y evaluación cardiológica especializada.", Price: 280, Duration: "45 min", Category: CategoryDiagnostic, Icon: "heart-pulse"},
		{ID: "14", Name: "Fisioterapia", Description: "Rehabilitación física post-quirúrgica y por lesiones.", Price: 150, Duration: "1 h", Category: CategoryCare, Icon: "dumbbell"},
	}
}

func defaultDoctors() []Doctor {
	return []Doctor{
		{ID: "1", Name: "Dra. María Fernández", Specialty: "Medicina Interna", Experience: "12 años", Rating: 4.9, Image: "https://images.unsplash.com/photo-1559839734-2b71ea197ec2?w=400", Availability: []string{"Lunes", "Martes", "Miércoles", "Jueves", "Viernes"}},
		{ID: "2", Name: "Dr. Carlos Rojas", Specialty: "Cirugía", Experience: "15 años", Rating: 4.8, Image: "https://images.unsplash.com/photo-1612349317150-e413f6a5b16d?w=400", Availability: []string{"Martes", "Jueves", "Sábado"}},
		{ID: "3", Name: "Dra. Lucía Vargas", Specialty: "Dermatología", Experience: "8 años", Rating: 4.7, Image: "https://images.unsplash.com/photo-1594824476967-48c8b964273f?w=400", Availability: []string{"Lunes", "Miércoles", "Viernes"}},
		{ID: "4", Name: "Dr. Jorge Mendoza", Specialty: "Emergencias", Experience: "10 años", Rating: 4.9, Image: "https://images.unsplash.com/photo-1537368910025-700350fe46c7?w=400", Availability: []string{"Todos los días"}},
	}
}
