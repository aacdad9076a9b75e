package melakarta

// melakartaNames lists the canonical names of all 72 Melakarta ragas in
// index order, six per chakra.
var melakartaNames = [Count]string{
	// Chakra 1 (Indu)
	"Kanakangi", "Ratnangi", "Ganamurti", "Vanaspati", "Manavati", "Tanarupi",
	// Chakra 2 (Netra)
	"Senavati", "Hanumattodi", "Dhenuka", "Natakapriya", "Kokilapriya", "Rupavati",
	// Chakra 3 (Agni)
	"Gayakapriya", "Vakulabharanam", "Mayamalavagowla", "Chakravakam", "Suryakantam", "Hatakambari",
	// Chakra 4 (Veda)
	"Jhankaradhwani", "Natabhairavi", "Kiravani", "Kharaharapriya", "Gourimanohari", "Varunapriya",
	// Chakra 5 (Bana)
	"Mararanjani", "Charukesi", "Sarasangi", "Harikambhoji", "Dheerasankarabharanam", "Naganandini",
	// Chakra 6 (Rutu)
	"Yagapriya", "Ragavardhani", "Gangeyabhushani", "Vagadheeswari", "Shulini", "Chalanata",
	// Chakra 7 (Rishi)
	"Salagam", "Jalarnavam", "Jhalavarali", "Navaneetam", "Pavani", "Raghupriya",
	// Chakra 8 (Vasu)
	"Gavambodhi", "Bhavapriya", "Shubhapantuvarali", "Shadvidamargini", "Suvarnangi", "Divyamani",
	// Chakra 9 (Brahma)
	"Dhavalambari", "Namanarayani", "Kamavardhani", "Ramapriya", "Gamanashrama", "Viswambari",
	// Chakra 10 (Disi)
	"Shyamalangi", "Shanmukhapriya", "Simhendramadhyamam", "Hemavati", "Dharmavati", "Neetimati",
	// Chakra 11 (Rudra)
	"Kantamani", "Rishabhapriya", "Latangi", "Vachaspati", "Mechakalyani", "Chitrambari",
	// Chakra 12 (Aditya)
	"Sucharitra", "Jyotiswarupini", "Dhatuvardhani", "Nasikabhushani", "Kosalam", "Rasikapriya",
}

// chakraNames lists the traditional chakra names. Chakras 7-12 are the
// prati madhyama counterparts of 1-6.
var chakraNames = [12]string{
	"Indu", "Netra", "Agni", "Veda", "Bana", "Rutu",
	"Rishi", "Vasu", "Brahma", "Disi", "Rudra", "Aditya",
}
