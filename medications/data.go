package medications

// defaultRecords is the curated table, ordered alphabetically by key. The
// text is display-only Swedish egenvård shorthand, not dosing advice; ATC
// codes are carried as published.
var defaultRecords = []Record{
	{
		Key:      "acetylcystein",
		Brands:   []string{"Acetylcystein Meda", "Mucomyst"},
		Use:      "Slemlösande vid hosta med segt slem i luftvägarna.",
		Dose:     "Vuxna: 200 mg brustablett 3 gånger dagligen, löses i vatten.",
		OTC:      OTCStatus{Kind: OTCYes},
		Warnings: "Bör inte kombineras med hostdämpande läkemedel. Försiktighet vid magsår och astma.",
		ATC:      "R05CB01",
	},
	{
		Key:      "acetylsalicylsyra",
		Brands:   []string{"Aspirin", "Magnecyl", "Bamyl", "Treo"},
		Use:      "Smärtstillande, febernedsättande och inflammationsdämpande vid tillfällig värk och feber.",
		Dose:     "Vuxna: 500–1000 mg vid behov, högst 3 gånger per dygn.",
		OTC:      OTCStatus{Kind: OTCYes},
		Warnings: "Ska inte ges till barn under 18 år vid feber på grund av risken för Reyes syndrom. Undvik vid magsår, blödningsbenägenhet och under graviditetens sista trimester.",
		ATC:      "N02BA01",
	},
	{
		Key:      "aciklovir",
		Brands:   []string{"Zovirax", "Anti"},
		Use:      "Antiviralt medel mot munsår orsakade av herpes simplex.",
		Dose:     "Kräm: appliceras 5 gånger dagligen i 4 dygn vid första tecken på munsår.",
		OTC:      OTCStatus{Kind: OTCConditional, Note: "Kräm mot munsår receptfri, tabletter receptbelagda."},
		Warnings: "Kontakta läkare vid utbredda eller långvariga besvär.",
		ATC:      "J05AB01",
	},
	{
		Key:      "amlodipin",
		Brands:   []string{"Norvasc", "Amlodipin Sandoz"},
		Use:      "Kalciumflödeshämmare mot högt blodtryck och kärlkramp.",
		Dose:     "Vuxna: 5–10 mg en gång dagligen enligt ordination.",
		OTC:      OTCStatus{Kind: OTCNo},
		Warnings: "Kan ge ankelsvullnad och yrsel, särskilt i början av behandlingen.",
		ATC:      "C08CA01",
	},
	{
		Key:      "amoxicillin",
		Brands:   []string{"Amimox", "Amoxicillin Sandoz"},
		Use:      "Bredspektrumpenicillin vid bland annat öron-, bihåle- och lunginflammation.",
		Dose:     "Vuxna: 500–750 mg 3 gånger dagligen enligt ordination. Kuren ska fullföljas.",
		OTC:      OTCStatus{Kind: OTCNo},
		Warnings: "Ska inte användas vid penicillinallergi. Utslag och magbesvär är vanliga biverkningar.",
		ATC:      "J01CA04",
	},
	{
		Key:      "atorvastatin",
		Brands:   []string{"Lipitor", "Atorvastatin Teva"},
		Use:      "Statin som sänker kolesterolet och minskar risken för hjärt-kärlsjukdom.",
		Dose:     "Vuxna: 10–80 mg en gång dagligen, vanligen till kvällen.",
		OTC:      OTCStatus{Kind: OTCNo},
		Warnings: "Kontakta läkare vid oförklarlig muskelvärk. Grapefruktjuice kan öka biverkningsrisken.",
		ATC:      "C10AA05",
	},
	{
		Key:      "betametason",
		Brands:   []string{"Betapred"},
		Use:      "Kortison med kraftig antiinflammatorisk effekt vid bland annat allergiska reaktioner och krupp.",
		Dose:     "Enligt läkares ordination. Tabletterna kan lösas i vatten.",
		OTC:      OTCStatus{Kind: OTCNo},
		Warnings: "Längre tids behandling ska inte avbrytas tvärt.",
		ATC:      "H02AB01",
	},
	{
		Key:      "bisakodyl",
		Brands:   []string{"Dulcolax", "Toilax"},
		Use:      "Tarmirriterande laxermedel vid tillfällig förstoppning.",
		Dose:     "Vuxna: 5–10 mg till natten, effekt inom 6–12 timmar.",
		OTC:      OTCStatus{Kind: OTCYes},
		Warnings: "Bör inte användas regelbundet under längre tid utan läkarkontakt.",
		ATC:      "A06AB02",
	},
	{
		Key:      "bromhexin",
		Brands:   []string{"Bisolvon"},
		Use:      "Slemlösande vid hosta med segt slem.",
		Dose:     "Vuxna: 8 mg 3 gånger dagligen.",
		OTC:      OTCStatus{Kind: OTCYes},
		Warnings: "Uppsök läkare om hostan varar mer än fyra veckor.",
		ATC:      "R05CB02",
	},
	{
		Key:      "cetirizin",
		Brands:   []string{"Zyrlex", "Cetirizin Sandoz"},
		Use:      "Antihistamin mot pollenallergi, nässelutslag och klåda.",
		Dose:     "Vuxna och barn över 12 år: 10 mg en gång dagligen.",
		OTC:      OTCStatus{Kind: OTCYes},
		Warnings: "Kan ge trötthet hos vissa. Prova effekten innan bilkörning.",
		ATC:      "R06AE07",
	},
	{
		Key:      "desloratadin",
		Brands:   []string{"Aerius", "Desloratadin Krka"},
		Use:      "Antihistamin mot allergisk rinit och nässelutslag, i regel inte tröttande.",
		Dose:     "Vuxna: 5 mg en gång dagligen.",
		OTC:      OTCStatus{Kind: OTCConditional, Note: "Receptfritt i små förpackningar till vuxna, receptbelagt i större förpackningar och till barn."},
		Warnings: "Rådgör med läkare vid graviditet eller amning.",
		ATC:      "R06AX27",
	},
	{
		Key:      "diazepam",
		Brands:   []string{"Stesolid"},
		Use:      "Bensodiazepin mot ångest, oro och muskelspasmer.",
		Dose:     "Enligt läkares ordination, lägsta verksamma dos under kortast möjliga tid.",
		OTC:      OTCStatus{Kind: OTCNo},
		Warnings: "Beroendeframkallande. Påverkar reaktionsförmågan och ska inte kombineras med alkohol.",
		ATC:      "N05BA01",
	},
	{
		Key:      "diklofenak",
		Brands:   []string{"Voltaren", "Eeze", "Diklofenak Bluefish"},
		Use:      "NSAID mot smärta och inflammation i muskler och leder.",
		Dose:     "Gel: appliceras på smärtande område 2–3 gånger dagligen. Tabletter enligt ordination.",
		OTC:      OTCStatus{Kind: OTCConditional, Note: "Gel receptfri, tabletter receptbelagda."},
		Warnings: "Tabletter ökar risken för hjärt-kärlhändelser och ska undvikas vid hjärtsjukdom. Används inte under graviditetens sista trimester.",
		ATC:      "M02AA15",
	},
	{
		Key:      "enalapril",
		Brands:   []string{"Renitec", "Enalapril Sandoz"},
		Use:      "ACE-hämmare mot högt blodtryck och hjärtsvikt.",
		Dose:     "Vuxna: 5–20 mg en gång dagligen enligt ordination.",
		OTC:      OTCStatus{Kind: OTCNo},
		Warnings: "Torrhosta är en vanlig biverkning. Sök genast vård vid svullnad av ansikte eller svalg.",
		ATC:      "C09AA02",
	},
	{
		Key:      "esomeprazol",
		Brands:   []string{"Nexium", "Esomeprazol Krka"},
		Use:      "Protonpumpshämmare mot halsbränna och sura uppstötningar.",
		Dose:     "Vuxna: 20 mg en gång dagligen, vid egenvård i högst 14 dagar.",
		OTC:      OTCStatus{Kind: OTCConditional, Note: "Receptfritt för korttidsbehandling av reflux hos vuxna, receptbelagt vid längre behandling."},
		Warnings: "Kontakta läkare vid sväljsvårigheter, viktnedgång eller om besvären kvarstår efter två veckor.",
		ATC:      "A02BC05",
	},
	{
		Key:      "fenoximetylpenicillin",
		Brands:   []string{"Kåvepenin", "Tikacillin"},
		Use:      "Penicillin mot halsfluss, öroninflammation och andra streptokockinfektioner.",
		Dose:     "Vuxna: 1 g 3 gånger dagligen i 5–10 dygn enligt ordination.",
		OTC:      OTCStatus{Kind: OTCNo},
		Warnings: "Ska inte användas vid penicillinallergi. Fullfölj alltid kuren.",
		ATC:      "J01CE02",
	},
	{
		Key:      "flukonazol",
		Brands:   []string{"Diflucan", "Flukonazol Krka"},
		Use:      "Svampmedel mot underlivssvamp och andra jästsvampinfektioner.",
		Dose:     "Vid underlivssvamp: 150 mg som engångsdos.",
		OTC:      OTCStatus{Kind: OTCConditional, Note: "Engångsdos mot underlivssvamp receptfri, övrig användning receptbelagd."},
		Warnings: "Rådgör med läkare vid återkommande besvär eller graviditet.",
		ATC:      "J02AC01",
	},
	{
		Key:      "hydrokortison",
		Brands:   []string{"Hydrokortison CCS", "Mildison"},
		Use:      "Mild kortisonkräm mot eksem, klåda och insektsbett.",
		Dose:     "Appliceras tunt 1–2 gånger dagligen i högst en vecka vid egenvård.",
		OTC:      OTCStatus{Kind: OTCConditional, Note: "Kräm 1 % receptfri, starkare beredningar och tabletter receptbelagda."},
		Warnings: "Ska inte användas i ansiktet under längre tid eller på infekterad hud.",
		ATC:      "D07AA02",
	},
	{
		Key:      "hydroxizin",
		Brands:   []string{"Atarax"},
		Use:      "Antihistamin mot ångest, oro och klåda.",
		Dose:     "Vuxna: 25 mg till natten eller enligt ordination.",
		OTC:      OTCStatus{Kind: OTCNo},
		Warnings: "Ger trötthet och kan påverka hjärtrytmen. Kombinera inte med andra QT-förlängande läkemedel.",
		ATC:      "N05BB01",
	},
	{
		Key:      "ibuprofen",
		Brands:   []string{"Ipren", "Brufen", "Ibumetin"},
		Use:      "NSAID mot värk, feber och inflammation.",
		Dose:     "Vuxna: 200–400 mg vid behov, högst 1200 mg per dygn vid egenvård.",
		OTC:      OTCStatus{Kind: OTCConditional, Note: "Receptfritt i styrkor upp till 400 mg, receptbelagt i högre styrkor."},
		Warnings: "Undvik vid magsår, nedsatt njurfunktion och under graviditetens sista trimester. Ska inte kombineras med andra NSAID.",
		ATC:      "M01AE01",
	},
	{
		Key:      "järn",
		Brands:   []string{"Duroferon", "Niferex"},
		Use:      "Järntillskott vid järnbristanemi.",
		Dose:     "Vuxna: 100 mg 1–2 gånger dagligen, helst på fastande mage.",
		OTC:      OTCStatus{Kind: OTCYes},
		Warnings: "Ger mörk avföring och kan ge förstoppning. Förvaras oåtkomligt för barn, överdosering är farlig för småbarn.",
		ATC:      "B03AA07",
	},
	{
		Key:      "klotrimazol",
		Brands:   []string{"Canesten"},
		Use:      "Svampmedel mot underlivssvamp och hudsvamp.",
		Dose:     "Vagitorium 500 mg som engångsdos, eller kräm 2 gånger dagligen i 1–2 veckor.",
		OTC:      OTCStatus{Kind: OTCYes},
		Warnings: "Vid första besvärsepisoden bör diagnosen bekräftas av läkare.",
		ATC:      "G01AF02",
	},
	{
		Key:      "kodein",
		Brands:   []string{"Citodon", "Panocod"},
		Use:      "Opioid i kombination med paracetamol vid måttlig till svår smärta.",
		Dose:     "Vuxna: 1–2 tabletter högst 4 gånger per dygn enligt ordination.",
		OTC:      OTCStatus{Kind: OTCNo},
		Warnings: "Beroendeframkallande. Kan ge dåsighet och förstoppning. Total paracetamoldos får inte överskridas.",
		ATC:      "N02AJ06",
	},
	{
		Key:      "laktulos",
		Brands:   []string{"Duphalac", "Laktulos Fresenius"},
		Use:      "Osmotiskt laxermedel vid förstoppning.",
		Dose:     "Vuxna: 15–30 ml dagligen, effekt efter 1–3 dygn.",
		OTC:      OTCStatus{Kind: OTCYes},
		Warnings: "Gasbildning och uppblåsthet är vanligt i början av behandlingen.",
		ATC:      "A06AD11",
	},
	{
		Key:      "levotyroxin",
		Brands:   []string{"Levaxin", "Euthyrox"},
		Use:      "Sköldkörtelhormon vid hypotyreos.",
		Dose:     "Individuell dos enligt ordination, tas på fastande mage på morgonen.",
		OTC:      OTCStatus{Kind: OTCNo},
		Warnings: "Järn- och kalciumtillskott minskar upptaget. Ta dem med flera timmars mellanrum.",
		ATC:      "H03AA01",
	},
	{
		Key:      "loperamid",
		Brands:   []string{"Imodium", "Dimor", "Travello"},
		Use:      "Stoppande medel vid akut diarré.",
		Dose:     "Vuxna: 4 mg initialt, därefter 2 mg efter varje lös avföring, högst 16 mg per dygn.",
		OTC:      OTCStatus{Kind: OTCYes},
		Warnings: "Ska inte användas vid feber eller blod i avföringen. Uppsök läkare om diarrén varar mer än två dygn.",
		ATC:      "A07DA03",
	},
	{
		Key:      "loratadin",
		Brands:   []string{"Clarityn", "Loratadin Sandoz"},
		Use:      "Antihistamin mot pollenallergi och nässelutslag, i regel inte tröttande.",
		Dose:     "Vuxna och barn över 12 år: 10 mg en gång dagligen.",
		OTC:      OTCStatus{Kind: OTCYes},
		Warnings: "Rådgör med läkare vid graviditet.",
		ATC:      "R06AX13",
	},
	{
		Key:      "makrogol",
		Brands:   []string{"Movicol", "Forlax", "Omnilax"},
		Use:      "Osmotiskt laxermedel vid förstoppning, även för längre tids användning.",
		Dose:     "Vuxna: 1–2 dospåsar dagligen upplösta i vatten.",
		OTC:      OTCStatus{Kind: OTCYes},
		Warnings: "Drick rikligt med vätska under behandlingen.",
		ATC:      "A06AD15",
	},
	{
		Key:      "mebendazol",
		Brands:   []string{"Vermox"},
		Use:      "Maskmedel mot springmask.",
		Dose:     "Vuxna och barn över 2 år: 100 mg som engångsdos, upprepas efter 2–3 veckor.",
		OTC:      OTCStatus{Kind: OTCConditional, Note: "Receptfritt mot springmask, övriga maskinfektioner receptbelagda."},
		Warnings: "Behandla hela hushållet samtidigt vid springmask. Används inte under graviditet utan läkarkontakt.",
		ATC:      "P02CA01",
	},
	{
		Key:      "meklozin",
		Brands:   []string{"Postafen"},
		Use:      "Antihistamin mot åksjuka och illamående.",
		Dose:     "Vuxna: 25 mg en timme före resan, vid behov på nytt efter 24 timmar.",
		OTC:      OTCStatus{Kind: OTCYes},
		Warnings: "Ger dåsighet. Undvik bilkörning och alkohol.",
		ATC:      "R06AE05",
	},
	{
		Key:      "melatonin",
		Brands:   []string{"Melatonin AGB", "Mecastrin", "Circadin"},
		Use:      "Sömnhormon vid tillfälliga sömnbesvär och jetlag.",
		Dose:     "Vuxna: 1–2 mg 30–60 minuter före sänggåendet.",
		OTC:      OTCStatus{Kind: OTCConditional, Note: "Receptfritt för vuxna i korttidsförpackning vid jetlag och tillfälliga sömnbesvär, annars receptbelagt."},
		Warnings: "Långtidsanvändning bör ske i samråd med läkare.",
		ATC:      "N05CH01",
	},
	{
		Key:      "metformin",
		Brands:   []string{"Glucophage", "Metformin Orifarm"},
		Use:      "Förstahandsmedel vid typ 2-diabetes, sänker blodsockret.",
		Dose:     "Vuxna: 500–1000 mg 2–3 gånger dagligen till måltid enligt ordination.",
		OTC:      OTCStatus{Kind: OTCNo},
		Warnings: "Gör uppehåll vid vätskebrist, svår infektion och röntgenundersökning med kontrastmedel.",
		ATC:      "A10BA02",
	},
	{
		Key:      "metoprolol",
		Brands:   []string{"Seloken", "Metoprolol Sandoz"},
		Use:      "Betablockerare mot högt blodtryck, kärlkramp och hjärtrytmrubbningar.",
		Dose:     "Vuxna: 50–200 mg depottablett en gång dagligen enligt ordination.",
		OTC:      OTCStatus{Kind: OTCNo},
		Warnings: "Avbryt inte behandlingen tvärt. Försiktighet vid astma.",
		ATC:      "C07AB02",
	},
	{
		Key:      "mometason",
		Brands:   []string{"Nasonex", "Mommox"},
		Use:      "Kortisonnässpray mot nästäppa vid pollenallergi.",
		Dose:     "Vuxna: 1–2 sprayningar i vardera näsborren en gång dagligen.",
		OTC:      OTCStatus{Kind: OTCConditional, Note: "Nässpray receptfri för vuxna vid pollenallergi, annars receptbelagd."},
		Warnings: "Full effekt nås först efter några dagars regelbunden användning.",
		ATC:      "R01AD09",
	},
	{
		Key:      "naproxen",
		Brands:   []string{"Pronaxen", "Naprosyn", "Alpoxen"},
		Use:      "NSAID med lång verkningstid mot värk, inflammation och mensvärk.",
		Dose:     "Vuxna: 250–500 mg 2 gånger dagligen, vid egenvård högst 500 mg per dygn.",
		OTC:      OTCStatus{Kind: OTCConditional, Note: "Receptfritt i 250 mg för korttidsbruk, receptbelagt i högre styrkor."},
		Warnings: "Undvik vid magsår, hjärt-kärlsjukdom och under graviditetens sista trimester.",
		ATC:      "M01AE02",
	},
	{
		Key:      "natriumpikosulfat",
		Brands:   []string{"Cilaxoral", "Laxoberal"},
		Use:      "Tarmirriterande laxermedel i droppform vid förstoppning.",
		Dose:     "Vuxna: 10–20 droppar till natten.",
		OTC:      OTCStatus{Kind: OTCYes},
		Warnings: "Bör inte användas dagligen under längre tid utan läkarkontakt.",
		ATC:      "A06AB08",
	},
	{
		Key:      "nikotin",
		Brands:   []string{"Nicorette", "Nicotinell", "Zonnic"},
		Use:      "Nikotinersättning vid rökavvänjning.",
		Dose:     "Individuellt efter tidigare tobakskonsumtion, trappas ut successivt.",
		OTC:      OTCStatus{Kind: OTCYes},
		Warnings: "Rådgör med läkare vid hjärt-kärlsjukdom eller graviditet.",
		ATC:      "N07BA01",
	},
	{
		Key:      "noskapin",
		Brands:   []string{"Nipaxon"},
		Use:      "Hostdämpande vid torr rethosta.",
		Dose:     "Vuxna: 50 mg 3 gånger dagligen vid behov.",
		OTC:      OTCStatus{Kind: OTCYes},
		Warnings: "Ska inte kombineras med slemlösande medel. Uppsök läkare vid långvarig hosta.",
		ATC:      "R05DA07",
	},
	{
		Key:      "omeprazol",
		Brands:   []string{"Losec", "Omeprazol Pensa"},
		Use:      "Protonpumpshämmare mot halsbränna, sura uppstötningar och magsår.",
		Dose:     "Vuxna: 20 mg en gång dagligen, vid egenvård i högst 14 dagar.",
		OTC:      OTCStatus{Kind: OTCConditional, Note: "Receptfritt för korttidsbehandling av halsbränna, receptbelagt vid längre behandling."},
		Warnings: "Kontakta läkare om besvären kvarstår efter två veckors egenvård eller vid alarmsymtom som sväljsvårigheter och viktnedgång.",
		ATC:      "A02BC01",
	},
	{
		Key:      "ondansetron",
		Brands:   []string{"Zofran", "Ondansetron Vitabalans"},
		Use:      "Medel mot illamående och kräkningar, bland annat efter cytostatika och operation.",
		Dose:     "Enligt läkares ordination.",
		OTC:      OTCStatus{Kind: OTCNo},
		Warnings: "Förstoppning och huvudvärk är vanliga biverkningar.",
		ATC:      "A04AA01",
	},
	{
		Key:      "oxazepam",
		Brands:   []string{"Sobril", "Oxascand"},
		Use:      "Bensodiazepin mot ångest och oro.",
		Dose:     "Vuxna: 10–25 mg 1–3 gånger dagligen enligt ordination.",
		OTC:      OTCStatus{Kind: OTCNo},
		Warnings: "Beroendeframkallande. Påverkar reaktionsförmågan och ska inte kombineras med alkohol.",
		ATC:      "N05BA04",
	},
	{
		Key:      "pantoprazol",
		Brands:   []string{"Somac", "Pantoloc"},
		Use:      "Protonpumpshämmare mot halsbränna och sura uppstötningar.",
		Dose:     "Vuxna: 20 mg en gång dagligen, vid egenvård i högst 4 veckor.",
		OTC:      OTCStatus{Kind: OTCConditional, Note: "Receptfritt för korttidsbehandling av reflux, receptbelagt vid längre behandling."},
		Warnings: "Kontakta läkare om besvären inte lindras inom två veckor.",
		ATC:      "A02BC02",
	},
	{
		Key:      "paracetamol",
		Brands:   []string{"Alvedon", "Panodil", "Pamol"},
		Use:      "Smärtstillande och febernedsättande vid tillfällig värk och feber.",
		Dose:     "Vuxna: 500–1000 mg var 4–6 timme, högst 4 g per dygn.",
		OTC:      OTCStatus{Kind: OTCYes},
		Warnings: "Överdosering kan ge allvarlig leverskada. Kombinera inte flera paracetamolprodukter.",
		ATC:      "N02BE01",
	},
	{
		Key:      "prednisolon",
		Brands:   []string{"Prednisolon Pfizer", "Prednisolon Alternova"},
		Use:      "Kortison mot inflammatoriska och allergiska tillstånd.",
		Dose:     "Individuell dos enligt ordination, trappas ofta ut gradvis.",
		OTC:      OTCStatus{Kind: OTCNo},
		Warnings: "Längre tids behandling ska inte avbrytas tvärt. Ökar infektionskänsligheten.",
		ATC:      "H02AB06",
	},
	{
		Key:      "prometazin",
		Brands:   []string{"Lergigan"},
		Use:      "Sederande antihistamin mot oro, illamående och tillfälliga sömnbesvär.",
		Dose:     "Vuxna: 25–50 mg till natten enligt ordination.",
		OTC:      OTCStatus{Kind: OTCNo},
		Warnings: "Ger uttalad dåsighet. Undvik bilkörning dagen efter intag.",
		ATC:      "R06AD02",
	},
	{
		Key:      "salbutamol",
		Brands:   []string{"Ventoline", "Airomir", "Buventol"},
		Use:      "Luftrörsvidgande vid astma och KOL.",
		Dose:     "1–2 inhalationer vid behov enligt ordination.",
		OTC:      OTCStatus{Kind: OTCNo},
		Warnings: "Ökat behov av anfallsmedicin kan tyda på försämrad astma. Kontakta läkare.",
		ATC:      "R03AC02",
	},
	{
		Key:      "sertralin",
		Brands:   []string{"Zoloft", "Sertralin Krka"},
		Use:      "SSRI mot depression och ångestsyndrom.",
		Dose:     "Vuxna: 50–200 mg en gång dagligen enligt ordination.",
		OTC:      OTCStatus{Kind: OTCNo},
		Warnings: "Effekten kommer gradvis under de första veckorna. Avbryt inte behandlingen utan läkarkontakt.",
		ATC:      "N06AB06",
	},
	{
		Key:      "simvastatin",
		Brands:   []string{"Zocord", "Simidon"},
		Use:      "Statin som sänker kolesterolet.",
		Dose:     "Vuxna: 10–40 mg en gång dagligen till kvällen.",
		OTC:      OTCStatus{Kind: OTCNo},
		Warnings: "Kontakta läkare vid oförklarlig muskelvärk. Undvik grapefruktjuice.",
		ATC:      "C10AA01",
	},
	{
		Key:      "sumatriptan",
		Brands:   []string{"Imigran", "Sumatriptan Teva"},
		Use:      "Triptan mot akuta migränanfall.",
		Dose:     "Vuxna: 50 mg vid anfall, kan upprepas efter 2 timmar, högst 100 mg per dygn vid egenvård.",
		OTC:      OTCStatus{Kind: OTCConditional, Note: "Receptfritt i liten förpackning för vuxna med diagnostiserad migrän, annars receptbelagt."},
		Warnings: "Ska inte användas vid hjärt-kärlsjukdom eller okontrollerat högt blodtryck.",
		ATC:      "N02CC01",
	},
	{
		Key:      "terbinafin",
		Brands:   []string{"Lamisil"},
		Use:      "Svampmedel mot fotsvamp och andra hudsvampinfektioner.",
		Dose:     "Kräm: appliceras 1–2 gånger dagligen i 1–2 veckor.",
		OTC:      OTCStatus{Kind: OTCConditional, Note: "Kräm receptfri, tabletter receptbelagda."},
		Warnings: "Tablettbehandling kräver läkarkontakt och kan påverka levern.",
		ATC:      "D01AE15",
	},
	{
		Key:      "tramadol",
		Brands:   []string{"Tiparol", "Nobligan", "Tradolan"},
		Use:      "Opioid mot måttlig till svår smärta.",
		Dose:     "Vuxna: 50–100 mg högst 4 gånger per dygn enligt ordination.",
		OTC:      OTCStatus{Kind: OTCNo},
		Warnings: "Beroendeframkallande. Kan ge illamående och yrsel. Kombinera inte med alkohol eller andra dämpande medel.",
		ATC:      "N02AX02",
	},
	{
		Key:      "vareniklin",
		Brands:   []string{"Champix"},
		Use:      "Stöd vid rökavvänjning, minskar röksug och abstinensbesvär.",
		Dose:     "Upptrappning till 1 mg 2 gånger dagligen i 12 veckor enligt ordination.",
		OTC:      OTCStatus{Kind: OTCNo},
		Warnings: "Illamående är vanligt. Rapportera humörförändringar till läkare.",
		ATC:      "N07BA03",
	},
	{
		Key:      "warfarin",
		Brands:   []string{"Waran"},
		Use:      "Blodförtunnande vid förmaksflimmer och blodpropp.",
		Dose:     "Individuell dos styrd av regelbundna PK(INR)-prover.",
		OTC:      OTCStatus{Kind: OTCNo},
		Warnings: "Interagerar med många läkemedel och naturläkemedel. Sök vård vid blödning eller svart avföring. Informera alltid vården om behandlingen.",
		ATC:      "B01AA03",
	},
	{
		Key:      "xylometazolin",
		Brands:   []string{"Otrivin", "Nasoferm"},
		Use:      "Avsvällande nässpray vid nästäppa.",
		Dose:     "Vuxna: 1 sprayning i vardera näsborren högst 3 gånger dagligen, i högst 10 dagar i följd.",
		OTC:      OTCStatus{Kind: OTCYes},
		Warnings: "Längre tids användning kan ge läkemedelsutlöst nästäppa.",
		ATC:      "R01AA07",
	},
	{
		Key:      "zopiklon",
		Brands:   []string{"Imovane", "Zopiklon Pilum"},
		Use:      "Sömnmedel vid tillfälliga sömnbesvär.",
		Dose:     "Vuxna: 5–7,5 mg till natten under kort tid enligt ordination.",
		OTC:      OTCStatus{Kind: OTCNo},
		Warnings: "Beroendeframkallande vid regelbunden användning. Kan ge dåsighet och bitter smak i munnen. Undvik bilkörning dagen efter.",
		ATC:      "N05CF01",
	},
}

var defaultTable = MustNewTable(defaultRecords)

// Default returns the compiled-in table shared by the CLI and the server.
// It is built and validated once, at process start.
func Default() *Table {
	return defaultTable
}
