package seed

type artworkSample struct {
	Title       string
	Artist      string
	Description string
	Image       string
}

type exhibitionSample struct {
	Title             string
	Description       string
	DetailDescription string
	Location          string
	StartDate         string
	EndDate           string
	Image             string
	Category          string
	Organizer         string
	Artworks          []artworkSample
}

// samples are PinchukArtCentre shows. Image values are file names below the
// uploads base URL.
var samples = []exhibitionSample{
	{
		Title:             "Олександр Ройтбурд. Теорема влади",
		Description:       "Виставка є результатом діяльності Дослідницької платформи PinchukArtCentre, яка осмислює взаємодію художника, мистецтва та влади.",
		DetailDescription: "Олександр Ройтбурд вважав, що митцю природно належить влада впливати на світ, та присвятив своє життя втіленню цієї візії. У своєму мистецтві він оприявнював різні втілення влади: через міфи та забобони, вершини світового інтелектуального та художнього надбання, тілесне та підсвідоме, політичні ідеології та образи конкретних державних діячів.",
		Location:          "PinchukArtCentre",
		StartDate:         "2024-03-08",
		EndDate:           "2024-07-14",
		Image:             "oleksandr-rojtburd-teorema-vlady-1.webp",
		Category:          "Сучасне мистецтво",
		Organizer:         "Костянтин Дорошенко, Олександр Бурлака",
		Artworks: []artworkSample{
			{"Автопортрет із проєкту 'Вправи на розкутість'", "Олександр Ройтбурд", "Надано родиною художника. Фото в експозиції", "oleksandr-rojtburd-teorema-vlady-1___img1.webp"},
			{"Автопортрет", "Олександр Ройтбурд", "Надано родиною художника. Полотно олія. Фото в експозиції", "oleksandr-rojtburd-teorema-vlady-1___img2.webp"},
			{"Будда повалений", "Олександр Ройтбурд", "Полотно олія. Фото в експозиції", "oleksandr-rojtburd-teorema-vlady-1___img3.webp"},
		},
	},
	{
		Title:             "Виставка 21 номінантки та номінанта на Премію Future Generation Art Prize 2024",
		Description:       "PinchukArtCentre представляє виставку 21 номінантки та номінанта 7-ї Премії Future Generation Art Prize, що зосередиться на демонстрації найактуальніших творчих тенденцій нового покоління художників.",
		DetailDescription: "Заснована Фондом Віктора Пінчука в 2009 році, Future Generation Art Prize — це міжнародна премія в галузі сучасного мистецтва, метою якої є відкриття нових імен та надання довгострокової підтримки майбутньому поколінню художни_ць. Виставка об'єднує унікальні культурні перспективи та практики для залучення до обговорення нагальних питань сьогодення.",
		Location:          "PinchukArtCentre",
		StartDate:         "2024-10-04",
		EndDate:           "2025-01-19",
		Image:             "future-generation-art-prize-2024.webp",
		Category:          "Декоративне мистецтво",
		Organizer:         "Інга Лаце, Олександра Погребняк, Дар'я Шевцова",
		Artworks: []artworkSample{
			{"Відображення майбутнього", "Сінзо Аанза", "Фото в експозиції", "future-generation-art-prize-2024___img1.webp"},
			{"Людська композиція", "Вероніка Гапченко", "Фото в експозиції", "future-generation-art-prize-2024___img2.webp"},
		},
	},
	{
		Title:             "Коли віра зрушує гори",
		Description:       "Масштабна групова виставка за участю понад 45 українських і міжнародних митців і мисткинь, представлена у партнерстві з бельгійським Музеєм сучасного мистецтва в Антверпені M HKA та урядом Фландрії.",
		DetailDescription: "Виставка представить роботи з M HKA/колекції Фламандської спільноти, відібрані завдяки емансипаційному характеру та здатності відкривати нові можливості. В експозиції твори з бельгійської колекції вступають у діалог із роботами українських митців та мисткинь, більшість яких була створена під час війни. Виставка спонукає відчувати, розмірковувати та рефлексувати поза межами негайних викликів війни.",
		Location:          "PinchukArtCentre",
		StartDate:         "2022-07-17",
		EndDate:           "2022-10-09",
		Image:             "when-faith-moves-mountains-ua.webp",
		Category:          "Інсталяція",
		Organizer:         "Барт де Баре, Бйорн Гельдхоф, Ксенія Малих, Ярема Малащук, Роман Хімей",
		Artworks: []artworkSample{
			{"Бомбозховище", "Kinder Album", "Робота Бомбосховище входить до серії 'Воєнний альбом', що його створює Kinder Album з початку повномасштабного вторгнення Росії до України, фіксуючи найбільш резонансні художні образи, що виникають у воєнному повсякденні", "when-faith-moves-mountains-ua___img1.webp"},
			{"Жертвопринесення", "Мерлен Дюма", "Марлен Дюма самотужки збирає та реставрує старі фотографії та кіноплівки, які потім використовує при створенні своїх робіт. Точно вказати, як народилась ідея цього твору, неможливо, оскільки задум художниці можна оцінювати лише виходячи з її робіт. Назва роботи, стиль її виконання та кольорова гама наводять на враження, що тут зображено емоційно забарвлену подію, та ми не знаємо точно, яка це подія. У цій картині, як і в багатьох інших, Дюма залишає широкий простір для інтерпретації", "when-faith-moves-mountains-ua___img2.webp"},
		},
	},
	{
		Title:             "Дім російських воєнних злочинів",
		Description:       "Виставка фотографій, що фіксують воєнні злочини, вчинені російськими окупантами в Україні. Проєкт був представлений під час всесвітнього економічного форуму в Давосі у колишньому 'Російському домі'.",
		DetailDescription: "Фотографії були зроблені в різних куточках України від першого дня вторгнення і до початку липня 2022 року. Кульмінація проєкту – відео Олексія Сая, що об'єднує 6400 зображень воєнних злочинів. Проєкт створений для привернення уваги світової спільноти до російської агресії проти України.",
		Location:          "Давос, штаб-квартира НАТО, Європарламент",
		StartDate:         "2022-05-23",
		EndDate:           "2022-05-30",
		Image:             "russian-war-crimes-ua.webp",
		Category:          "Фотографія",
		Organizer:         "Бйорн Гельдхоф, Ксенія Малих",
		Artworks: []artworkSample{
			{"Житловий будинок на проспекті Лобановського, м. Київ", "Максим Дондюк", "Житловий будинок на проспекті Лобановського, в який влучив снаряд. В частині будинку, на трьох поверхах — з 18 по 20-й, зруйновано квартири. За словами рятувальників, постраждалих немає. Більшість мешканців на момент удару перебували в укритті.", "russian-war-crimes-ua___img1.webp"},
			{"Медичний працівник", "Мстислав Чернов", "Медичний працівник йде вестибюлем постраждалого внаслідок обстрілу пологового будинку в Маріуполі", "russian-war-crimes-ua___img2.webp"},
		},
	},
	{
		Title:             "Камінь б'є камінь",
		Description:       "Перша персональна виставка Нікіти Кадана в Україні, організована в контексті діяльності Дослідницької платформи PinchukArtCentre. Демонструє як новостворені, так і існуючі роботи художника.",
		DetailDescription: "Виставка є рефлексією на теми української історії, політичного насильства, національного історичного спадку, авангарду та радянської утопії. Досліджує виклики теперішнього часу в нерозривному зв'язку з минулим, використовуючи історію, щоб освітити сьогодення та уявити майбутнє. Виставка починається з 'флешбеку', що проявляється в інтуїтивній художньо-історичній рефлексії, здебільшого через роботи українського авангарду. Кадан наново інтерпретує історичні події, об'єкти та образи з огляду на гостру потребу сьогодення протистояти геополітичним помилкам, імперіалістській агресії та праворадикальним ідеологіям.",
		Location:          "PinchukArtCentre",
		StartDate:         "2023-09-15",
		EndDate:           "2024-01-28",
		Image:             "stone-hits-stone-ua.webp",
		Category:          "Сучасне мистецтво",
		Organizer:         "Бйорн Гельдхоф, Катерина Яковленко, Дана Косміна",
		Artworks: []artworkSample{
			{"Ескіз пам'ятника «Монумент Ленінської Епохи»", "Василь Єрмілов", "Ескіз пам'ятника «Монумент Ленінської Епохи», 1961. Папір, акварель, графічний олівець", "stone-hits-stone-ua___img1.webp"},
			{"У селі (Об'їжджають коня)", "Віктор Пальмов", "У селі (Об'їжджають коня), 1927. Полотно, олія. Фото в експозиції", "stone-hits-stone-ua___img2.webp"},
			{"Червона Україна", "Василь Єрмілов", "Ескіз розпису агітпотягу, 1919. Папір, акварель. Фото в експозиції", "stone-hits-stone-ua___img3.webp"},
		},
	},
	{
		Title:             "Згадати той день коли",
		Description:       "Групова виставка українських митців, що поєднує роботи з колекції PinchukArtCentre з новими спеціально створеними роботами. Перший проект в рамках нової серії виставок українського мистецтва.",
		DetailDescription: "Розповідь про події, які вплинули на хід історії України та суспільство: від Голодомору через Перебудову, 1990-ті, Помаранчеву революцію, Революцію гідності та дотепер. Виставка демонструє блискавичну швидкість, з якою Україна змінювалася протягом останніх трьох десятиліть. Залучаючи різні покоління українських художників до діалогу, виставка показує, як митці рефлексували історичні події й процеси, і як їхні роботи знаходять нову актуальність через плин часу. Виставка складається з двох розділів: перший зосереджує увагу на емоційних переживаннях та психологічних портретах суспільства, другий присвячено зміні погляду на минуле та уявленню про майбутнє.",
		Location:          "PinchukArtCentre",
		StartDate:         "2021-02-27",
		EndDate:           "2021-08-15",
		Image:             "remember-yesterday-ua.webp",
		Category:          "Сучасне мистецтво",
		Organizer:         "Бйорн Гельдхоф, Ксенія Малих, Дана Косміна",
		Artworks: []artworkSample{
			{"Ніжки, як тростиночки", "Юлія Бєляєва", "Ніжки, як тростиночки, 2021. Порцеляна, бісквіт. Фото в експозиції", "stone-hits-stone-ua___img4.webp"},
			{"Копія картини Віктора Пузиркова «Чорноморці» 1947", "Леся Хоменко", "Копія картини Віктора Пузиркова «Чорноморці» 1947 (2011). Полотно, акрил. Фото в експозиції", "stone-hits-stone-ua___img2.webp"},
		},
	},
	{
		Title:             "Свій простір",
		Description:       "Групова виставка Дослідницької платформи PinchukArtCentre, що пропонує один із можливих поглядів на історію українського мистецтва та позицію жінки в ній, наголошуючи на виняткових художніх феноменах.",
		DetailDescription: "Назва виставки відсилає до есе Вірджинії Вулф «Своя кімната» (1929), пропонуючи задуматися, що є «простором» жінки в сучасному українському суспільстві. Виставка не дає чітких означень, радше ставить питання про зону комфорту, свободи, місце для висловлювання. Умовно складається з трьох розділів, у яких по-різному трактується ідея простору як вимушеного/прихованого, політичного/маніфестаційного, тілесного/чуттєвого. «Простори» конструюються навколо діалогів між творами сучасних художників і художниць та історичними феноменами: агітаційний плакат 1920–1930-х років, радянське монументальне мистецтво, «народна творчість». Особливе місце займає відтворена «своя кімната» Поліни Райко (1928–2004) — художниці з Херсонської області, яка створила власну іконографічну систему у своєму будинку.",
		Location:          "PinchukArtCentre",
		StartDate:         "2018-10-30",
		EndDate:           "2019-01-06",
		Image:             "aspaceofonesown.webp",
		Category:          "Сучасне мистецтво",
		Organizer:         "Тетяна Кочубінська, Тетяна Жмурко",
		Artworks: []artworkSample{
			{"Розпис Поліни Райко", "Поліна Райко", "Розпис Поліни Райко (1928–2004). Папір, акварель. Фото в експозиції", "stone-hits-stone-ua___img1.webp"},
			{"Велика сварка", "Марія Примаченко", "Велика сварка, 1936 та Коричневий звір, 1936. Папір, акварель. Фото в експозиції", "stone-hits-stone-ua___img2.webp"},
		},
	},
}
