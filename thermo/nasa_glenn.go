package thermo

// NASA-Glenn fits, 200-1000 K, 1000-6000 K and (where published) 6000-20000 K.
// Each row holds a1..a7 followed by the integration constants b1, b2.
var nasaGlenn = map[string][]Band{
	"CO2": {
		newBand(200, 1000, 4.943650540e+04, -6.264116010e+02, 5.301725240e+00, 2.503813816e-03, -2.127308728e-07, -7.689988780e-10, 2.849677801e-13, -4.528198460e+04, -7.048279440e+00),
		newBand(1000, 6000, 1.176962419e+05, -1.788791477e+03, 8.291523190e+00, -9.223156780e-05, 4.863676880e-09, -1.891053312e-12, 6.330036590e-16, -3.908350590e+04, -2.652669281e+01),
		newBand(6000, 20000, -1.544423287e+09, 1.016847056e+06, -2.561405230e+02, 3.369401080e-02, -2.181184337e-06, 6.991420840e-11, -8.842351500e-16, -8.043214510e+06, 2.254177493e+03),
	},
	"CO": {
		newBand(200, 1000, 1.489045326e+04, -2.922285939e+02, 5.724527170e+00, -8.176235030e-03, 1.456903469e-05, -1.087746302e-08, 3.027941827e-12, -1.303131878e+04, -7.859241350e+00),
		newBand(1000, 6000, 4.619197250e+05, -1.944704863e+03, 5.916714180e+00, -5.664282830e-04, 1.398814540e-07, -1.787680361e-11, 9.620935570e-16, -2.466261084e+03, -1.387413108e+01),
		newBand(6000, 20000, 8.868662960e+08, -7.500377840e+05, 2.495474979e+02, -3.956351100e-02, 3.297772080e-06, -1.318409933e-10, 1.998937948e-15, 5.701421130e+06, -2.060704786e+03),
	},
	"H2O": {
		newBand(200, 1000, -3.947960830e+04, 5.755731020e+02, 9.317826530e-01, 7.222712860e-03, -7.342557370e-06, 4.955043490e-09, -1.336933246e-12, -3.303974310e+04, 1.724205775e+01),
		newBand(1000, 6000, 1.034972096e+06, -2.412698562e+03, 4.646110780e+00, 2.291998307e-03, -6.836830480e-07, 9.426468930e-11, -4.822380530e-15, -1.384286509e+04, -7.978148510e+00),
	},
	"H2": {
		newBand(200, 1000, 4.078323210e+04, -8.009186040e+02, 8.214702010e+00, -1.269714457e-02, 1.753605076e-05, -1.202860270e-08, 3.368093490e-12, 2.682484665e+03, -3.043788844e+01),
		newBand(1000, 6000, 5.608128010e+05, -8.371504740e+02, 2.975364532e+00, 1.252249124e-03, -3.740716190e-07, 5.936625200e-11, -3.606994100e-15, 5.339824410e+03, -2.202774769e+00),
		newBand(6000, 20000, 4.966884120e+08, -3.147547149e+05, 7.984121880e+01, -8.414789210e-03, 4.753248350e-07, -1.371873492e-11, 1.605461756e-16, 2.488433516e+06, -6.695728110e+02),
	},
	"N2": {
		newBand(200, 1000, 2.210371497e+04, -3.818461820e+02, 6.082738360e+00, -8.530914410e-03, 1.384646189e-05, -9.625793620e-09, 2.519705809e-12, 7.108460860e+02, -1.076003744e+01),
		newBand(1000, 6000, 5.877124060e+05, -2.239249073e+03, 6.066949220e+00, -6.139685500e-04, 1.491806679e-07, -1.923105485e-11, 1.061954386e-15, 1.283210415e+04, -1.586640027e+01),
		newBand(6000, 20000, 8.310139160e+08, -6.420733540e+05, 2.020264635e+02, -3.065092046e-02, 2.486903333e-06, -9.705954110e-11, 1.437538881e-15, 4.938707040e+06, -1.672099740e+03),
	},
	"Ar": {
		newBand(200, 1000, 0.000000000e+00, 0.000000000e+00, 2.500000000e+00, 0.000000000e+00, 0.000000000e+00, 0.000000000e+00, 0.000000000e+00, -7.453750000e+02, 4.379674910e+00),
		newBand(1000, 6000, 2.010538475e+01, -5.992661070e-02, 2.500069401e+00, -3.992141160e-08, 1.205272140e-11, -1.819015576e-15, 1.078576636e-19, -7.449939610e+02, 4.379180110e+00),
		newBand(6000, 20000, -9.951265080e+08, 6.458887260e+05, -1.675894697e+02, 2.319933363e-02, -1.721080911e-06, 6.531938460e-11, -9.740147729e-16, -5.078300340e+06, 1.465298484e+03),
	},
	"O2": {
		newBand(200, 1000, -3.425563420e+04, 4.847000970e+02, 1.119010961e+00, 4.293889240e-03, -6.836300520e-07, -2.023372700e-09, 1.039040018e-12, -3.391454870e+03, 1.849699470e+01),
		newBand(1000, 6000, -1.037939022e+06, 2.344830282e+03, 1.819732036e+00, 1.267847582e-03, -2.188067988e-07, 2.053719572e-11, -8.193467050e-16, -1.689010929e+04, 1.738716506e+01),
		newBand(6000, 20000, 4.975294300e+08, -2.866106874e+05, 6.690352250e+01, -6.169959020e-03, 3.016396027e-07, -7.421416600e-12, 7.278175770e-17, 2.293554027e+06, -5.530621610e+02),
	},
	"H": {
		newBand(200, 1000, 0.000000000e+00, 0.000000000e+00, 2.500000000e+00, 0.000000000e+00, 0.000000000e+00, 0.000000000e+00, 0.000000000e+00, 2.547370801e+04, -4.466828530e-01),
		newBand(1000, 6000, 6.078774250e+01, -1.819354417e-01, 2.500211817e+00, -1.226512864e-07, 3.732876330e-11, -5.687744560e-15, 3.410210197e-19, 2.547486398e+04, -4.481917770e-01),
		newBand(6000, 20000, 2.173757694e+08, -1.312035403e+05, 3.399174200e+01, -3.813999680e-03, 2.432854837e-07, -7.694275540e-12, 9.644105630e-17, 1.067638086e+06, -2.742301051e+02),
	},
	"N": {
		newBand(200, 1000, 0.000000000e+00, 0.000000000e+00, 2.500000000e+00, 0.000000000e+00, 0.000000000e+00, 0.000000000e+00, 0.000000000e+00, 5.610463780e+04, 4.193905036e+00),
		newBand(1000, 6000, 8.876501380e+04, -1.071231500e+02, 2.362188287e+00, 2.916720081e-04, -1.729515100e-07, 4.012657880e-11, -2.677227571e-15, 5.697351330e+04, 4.865231506e+00),
		newBand(6000, 20000, 5.475181050e+08, -3.107574980e+05, 6.916782740e+01, -6.847988130e-03, 3.827572400e-07, -1.098367709e-11, 1.277986024e-16, 2.550585618e+06, -5.848769753e+02),
	},
	"O": {
		newBand(200, 1000, -7.953611300e+03, 1.607177787e+02, 1.966226438e+00, 1.013670310e-03, -1.110415423e-06, 6.517507500e-10, -1.584779251e-13, 2.840362437e+04, 8.404241820e+00),
		newBand(1000, 6000, 2.619020262e+05, -7.298722030e+02, 3.317177270e+00, -4.281334360e-04, 1.036104594e-07, -9.438304330e-12, 2.725038297e-16, 3.392428060e+04, -6.679585350e-01),
		newBand(6000, 20000, 1.779004264e+08, -1.082328257e+05, 2.810778365e+01, -2.975232262e-03, 1.854997534e-07, -5.796231540e-12, 7.191720164e-17, 8.890942630e+05, -2.181728151e+02),
	},
	"NO": {
		newBand(200, 1000, -1.143916503e+04, 1.536467592e+02, 3.431468730e+00, -2.668592368e-03, 8.481399120e-06, -7.685111050e-09, 2.386797655e-12, 9.098214410e+03, 6.728725490e+00),
		newBand(1000, 6000, 2.239018716e+05, -1.289651623e+03, 5.433936030e+00, -3.656034900e-04, 9.880966450e-08, -1.416076856e-11, 9.380184620e-16, 1.750317656e+04, -8.501669090e+00),
		newBand(6000, 20000, -9.575303540e+08, 5.912434480e+05, -1.384566826e+02, 1.694339403e-02, -1.007351096e-06, 2.912584076e-11, -3.295109350e-16, -4.677501240e+06, 1.242081216e+03),
	},
	"OH": {
		newBand(200, 1000, -1.998858990e+03, 9.300136160e+01, 3.050854229e+00, 1.529529288e-03, -3.157890998e-06, 3.315446180e-09, -1.138762683e-12, 2.991214235e+03, 4.674110790e+00),
		newBand(1000, 6000, 1.017393379e+06, -2.509957276e+03, 5.116547860e+00, 1.305299930e-04, -8.284322260e-08, 2.006475941e-11, -1.556993656e-15, 2.019640206e+04, -1.101282337e+01),
		newBand(6000, 20000, 2.847234193e+08, -1.859532612e+05, 5.008240900e+01, -5.142374980e-03, 2.875536589e-07, -8.228817960e-12, 9.567229020e-17, 1.468393908e+06, -4.023555580e+02),
	},
	"AIR": {
		newBand(200, 1000, 1.009950160e+04, -1.968275610e+02, 5.009155110e+00, -5.761013730e-03, 1.066859930e-05, -7.940297970e-09, 2.185231910e-12, -1.767967310e+02, -3.921504225e+00),
		newBand(1000, 6000, 2.415214430e+05, -1.257874600e+03, 5.144558670e+00, -2.138541790e-04, 7.065227840e-08, -1.071483490e-11, 6.577800150e-16, 6.462263190e+03, -8.147411905e+00),
	},
	"NO2": {
		newBand(200, 1000, -5.642038780e+04, 9.633085720e+02, -2.434510974e+00, 1.927760886e-02, -1.874559328e-05, 9.145497730e-09, -1.777647635e-12, -1.547925037e+03, 4.067851210e+01),
		newBand(1000, 6000, 7.213001570e+05, -3.832615200e+03, 1.113963285e+01, -2.238062246e-03, 6.547723430e-07, -7.611335900e-11, 3.328361050e-15, 2.502497403e+04, -4.305130040e+01),
	},
	"N2O": {
		newBand(200, 1000, 4.288225970e+04, -6.440118440e+02, 6.034351430e+00, 2.265394436e-04, 3.472782850e-06, -3.627748640e-09, 1.137969552e-12, 1.179405506e+04, -1.003128570e+01),
		newBand(1000, 6000, 3.438448040e+05, -2.404557558e+03, 9.125636220e+00, -5.401667930e-04, 1.315124031e-07, -1.414215100e-11, 6.381066870e-16, 2.198632638e+04, -3.147805016e+01),
	},
	"N2O3": {
		newBand(200, 1000, -9.204444170e+04, 9.295520150e+02, 3.203664810e+00, 1.356473078e-02, -6.262966070e-06, -1.402915559e-09, 1.431620930e-12, 3.313622080e+03, 1.844430953e+01),
		newBand(1000, 6000, 7.783881860e+05, -4.483024660e+03, 1.666668024e+01, -2.062143878e-03, 5.309541710e-07, -6.190451220e-11, 2.692956658e-15, 3.360912450e+04, -6.739212388e+01),
	},
	"N2O4": {
		newBand(200, 1000, -3.804751440e+04, 5.612828890e+02, -2.083648324e-01, 3.887087820e-02, -4.422412260e-05, 2.498812310e-08, -5.679102380e-12, -3.310794730e+03, 2.963924840e+01),
		newBand(1000, 6000, -4.582843760e+05, -1.604749805e+03, 1.674102133e+01, -5.091385080e-04, 1.143634670e-07, -1.316288176e-11, 5.976316620e-16, 4.306900520e+03, -6.569450380e+01),
	},
	"N2O5": {
		newBand(200, 1000, 4.007828170e+04, -8.769675120e+02, 1.055932981e+01, 1.394613859e-02, -8.884346920e-06, 8.500431150e-10, 7.791550910e-13, 3.038962037e+03, -2.386831860e+01),
		newBand(1000, 6000, -5.325578960e+04, -3.109277389e+03, 2.036088958e+01, -9.959901140e-04, 2.401398635e-07, -3.057161911e-11, 1.495915511e-15, 1.336957281e+04, -8.298623341e+01),
	},
	"HO2": {
		newBand(200, 1000, -7.598882540e+04, 1.329383918e+03, -4.677388240e+00, 2.508308202e-02, -3.006551588e-05, 1.895600056e-08, -4.828567390e-12, -5.873350960e+03, 5.193602140e+01),
		newBand(1000, 6000, -1.810669724e+06, 4.963192030e+03, -1.039498992e+00, 4.560148530e-03, -1.061859447e-06, 1.144567878e-10, -4.763064160e-15, -3.200817190e+04, 4.066850920e+01),
	},
	"H2O2": {
		newBand(200, 1000, -9.279533580e+04, 1.564748385e+03, -5.976460140e+00, 3.270744520e-02, -3.932193260e-05, 2.509255235e-08, -6.465045290e-12, -2.494004728e+04, 5.877174180e+01),
		newBand(1000, 6000, 1.489428027e+06, -5.170821780e+03, 1.128204970e+01, -8.042397790e-05, -1.818383769e-08, 6.947265590e-12, -4.827831900e-16, 1.418251038e+04, -4.650855660e+01),
	},
	"CH4": {
		newBand(200, 1000, -1.766850998e+05, 2.786181020e+03, -1.202577850e+01, 3.917619290e-02, -3.619054430e-05, 2.026853043e-08, -4.976705490e-12, -2.331314360e+04, 8.904322750e+01),
		newBand(1000, 6000, 3.730042760e+06, -1.383501485e+04, 2.049107091e+01, -1.961974759e-03, 4.727313040e-07, -3.728814690e-11, 1.623737207e-15, 7.532066910e+04, -1.219124889e+02),
	},
	"C2H2(ACETY)": {
		newBand(200, 1000, 1.598112089e+05, -2.216644118e+03, 1.265707813e+01, -7.979651080e-03, 8.054992750e-06, -2.433307673e-09, -7.529233180e-14, 3.712619060e+04, -5.244338900e+01),
		newBand(1000, 6000, 1.713847410e+06, -5.929106660e+03, 1.236127943e+01, 1.314186993e-04, -1.362764431e-07, 2.712655786e-11, -1.302066204e-15, 6.266578970e+04, -5.818960590e+01),
	},
	"C2H2(VINY)": {
		newBand(200, 1000, -1.466042239e+04, 2.789475593e+02, 1.276229776e+00, 1.395015463e-02, -1.475702649e-05, 9.476298110e-09, -2.567602217e-12, 4.736110180e+04, 1.658225704e+01),
		newBand(1000, 6000, 1.940838725e+06, -6.892718150e+03, 1.339582494e+01, -9.368968670e-04, 1.470804368e-07, -1.220040365e-11, 4.122391660e-16, 9.107112930e+04, -6.337502930e+01),
	},
	"C2H4": {
		newBand(200, 1000, -1.163605836e+05, 2.554851510e+03, -1.609746428e+01, 6.625779320e-02, -7.885081860e-05, 5.125224820e-08, -1.370340031e-11, -6.176191070e+03, 1.093338343e+02),
		newBand(1000, 6000, 3.408763670e+06, -1.374847903e+04, 2.365898074e+01, -2.423804419e-03, 4.431395660e-07, -4.352683390e-11, 1.775410633e-15, 8.820429380e+04, -1.371278108e+02),
	},
	"C2H6": {
		newBand(200, 1000, -1.862044161e+05, 3.406191860e+03, -1.951705092e+01, 7.565835590e-02, -8.204173220e-05, 5.061135800e-08, -1.319281992e-11, -2.702932890e+04, 1.298140496e+02),
		newBand(1000, 6000, 5.025782130e+06, -2.033022397e+04, 3.322552930e+01, -3.836703410e-03, 7.238405860e-07, -7.319182500e-11, 3.065468699e-15, 1.115963950e+05, -2.039410584e+02),
	},
	"C3H8": {
		newBand(200, 1000, -2.433144337e+05, 4.656270810e+03, -2.939466091e+01, 1.188952745e-01, -1.376308269e-04, 8.814823910e-08, -2.342987994e-11, -3.540335270e+04, 1.841749277e+02),
		newBand(1000, 6000, 6.420731680e+06, -2.659791134e+04, 4.534356840e+01, -5.020663920e-03, 9.471216940e-07, -9.575405230e-11, 4.009672880e-15, 1.455582459e+05, -2.818374734e+02),
	},
	"C4H8(ISOBUT)": {
		newBand(200, 1000, -2.327205032e+05, 3.941994240e+03, -2.224581184e+01, 1.012790864e-01, -1.073194065e-04, 6.454696910e-08, -1.646330345e-11, -2.233766063e+04, 1.479597621e+02),
		newBand(1000, 6000, 6.484970990e+06, -2.732504764e+04, 4.836321080e+01, -4.768004050e-03, 8.233875840e-07, -7.449253000e-11, 2.782303056e-15, 1.595941773e+05, -2.982986237e+02),
	},
	"C4H10(NBUT)": {
		newBand(200, 1000, -3.175872540e+05, 6.176331820e+03, -3.891562120e+01, 1.584654284e-01, -1.860050159e-04, 1.199676349e-07, -3.201670550e-11, -4.540363390e+04, 2.379488665e+02),
		newBand(1000, 6000, 7.682322450e+06, -3.256051510e+04, 5.736732750e+01, -6.197916810e-03, 1.180186048e-06, -1.221893698e-10, 5.250635250e-15, 1.774526560e+05, -3.587918760e+02),
	},
	"C4H10(ISOBUT)": {
		newBand(200, 1000, -3.834469330e+05, 7.000039640e+03, -4.440026900e+01, 1.746183447e-01, -2.078195348e-04, 1.339792433e-07, -3.551681630e-11, -5.034018890e+04, 2.658966497e+02),
		newBand(1000, 6000, 7.528018920e+06, -3.202517060e+04, 5.700161000e+01, -6.060013090e-03, 1.143975809e-06, -1.157061835e-10, 4.846042910e-15, 1.728500802e+05, -3.576176890e+02),
	},
	"C5H12(NPENT)": {
		newBand(200, 1000, -2.768894625e+05, 5.834283470e+03, -3.617541480e+01, 1.533339707e-01, -1.528395882e-04, 8.191092000e-08, -1.792327902e-11, -4.665375250e+04, 2.265544053e+02),
		newBand(1000, 6000, -2.530779286e+06, -8.972593260e+03, 4.536223260e+01, -2.626989916e-03, 3.135136419e-06, -5.318728940e-10, 2.886896868e-14, 1.484616529e+04, -2.516550384e+02),
	},
	"C6H14(NHEX)": {
		newBand(200, 1000, -5.815926700e+05, 1.079097724e+04, -6.633947030e+01, 2.523715155e-01, -2.904344705e-04, 1.802201514e-07, -4.617223680e-11, -7.271544570e+04, 3.938283540e+02),
		newBand(1000, 6000, -3.106625684e+06, -7.346087920e+03, 4.694131760e+01, 1.693963977e-03, 2.068996667e-06, -4.212141680e-10, 2.452345845e-14, 5.237503120e+02, -2.549967718e+02),
	},
	"C7H16(NHEP)": {
		newBand(200, 1000, -6.127432890e+05, 1.184085437e+04, -7.487188600e+01, 2.918466052e-01, -3.416795490e-04, 2.159285269e-07, -5.655852730e-11, -8.013408940e+04, 4.407213320e+02),
		newBand(1000, 6000, 9.135632470e+06, -3.923319690e+04, 7.889780850e+01, -4.654251930e-03, 2.071774142e-06, -3.442539300e-10, 1.976834775e-14, 2.050708295e+05, -4.851104020e+02),
	},
	"C7H16(2METH)": {
		newBand(200, 1000, -7.104777770e+05, 1.191251120e+04, -7.345339440e+01, 2.902952369e-01, -3.462767680e-04, 2.260184498e-07, -6.128813920e-11, -8.202147700e+04, 4.320042290e+02),
		newBand(1000, 6000, 1.289912969e+06, -1.784340963e+03, 1.083537673e+01, 5.270609240e-02, -1.886832314e-05, 2.432255843e-09, -1.135553789e-13, -1.637529884e+04, -2.981862410e+01),
	},
	"C8H18(NOCT)": {
		newBand(200, 1000, -6.986647150e+05, 1.338501096e+04, -8.415165920e+01, 3.271936660e-01, -3.777209590e-04, 2.339836988e-07, -6.010892650e-11, -9.026223250e+04, 4.939222140e+02),
		newBand(1000, 6000, 6.365406950e+06, -3.105364657e+04, 6.969162340e+01, 1.048059637e-02, -4.129621950e-06, 5.543226320e-10, -2.651436499e-14, 1.500968785e+05, -4.169895650e+02),
	},
	"C8H18(ISOCT)": {
		newBand(200, 1000, -1.688758565e+05, 3.126903227e+03, -2.123502828e+01, 1.489151508e-01, -1.151180135e-04, 4.473216170e-08, -5.554882070e-12, -4.468060620e+04, 1.417455793e+02),
		newBand(1000, 6000, 1.352765032e+07, -4.663370340e+04, 7.795313180e+01, 1.423729984e-02, -5.073593910e-06, 7.248232970e-10, -3.819190110e-14, 2.541178017e+05, -4.933887190e+02),
	},
	"NH": {
		newBand(200, 1000, 1.359651320e+04, -1.900296604e+02, 4.518496790e+00, -2.432776899e-03, 2.377587464e-06, -2.592797084e-10, -2.659680792e-13, 4.280972190e+04, -3.886561616e+00),
		newBand(1000, 6000, 1.958141991e+06, -5.782861300e+03, 9.335742020e+00, -2.292910311e-03, 6.076092480e-07, -6.647942750e-11, 2.384234783e-15, 7.898912340e+04, -4.116970400e+01),
		newBand(6000, 20000, 9.524636790e+07, -8.585826910e+04, 2.980445181e+01, -2.979563697e-03, 1.656334158e-07, -4.744791840e-12, 5.570148290e-17, 6.961434270e+05, -2.229027419e+02),
	},
	"NH2": {
		newBand(200, 1000, -3.118240659e+04, 4.754243390e+02, 1.372395176e+00, 6.306429720e-03, -5.987893560e-06, 4.492752340e-09, -1.414073548e-12, 1.928939662e+04, 1.540126885e+01),
		newBand(1000, 6000, 2.111053740e+06, -6.880627230e+03, 1.132305924e+01, -1.829236741e-03, 5.643890090e-07, -7.886452480e-11, 4.078593450e-15, 6.503778560e+04, -5.359155744e+01),
	},
	"NH3": {
		newBand(200, 1000, -7.681226150e+04, 1.270951578e+03, -3.893229130e+00, 2.145988418e-02, -2.183766703e-05, 1.317385706e-08, -3.332322060e-12, -1.264886413e+04, 4.366014588e+01),
		newBand(1000, 6000, 2.452389535e+06, -8.040894240e+03, 1.271346201e+01, -3.980186580e-04, 3.552502750e-08, 2.530923570e-12, -3.322700530e-16, 4.386191960e+04, -6.462330602e+01),
	},
	"N2H2": {
		newBand(200, 1000, -1.504005163e+05, 2.346687716e+03, -9.405430290e+00, 3.284299800e-02, -3.121920401e-05, 1.721283190e-08, -4.014537220e-12, 1.319384041e+04, 7.832382630e+01),
		newBand(1000, 6000, 6.217567870e+06, -1.753952096e+04, 2.022730509e+01, -9.757297660e-04, -4.208416740e-07, 1.117921171e-10, -7.627102210e-15, 1.374152574e+05, -1.199559168e+02),
	},
	"N2H4": {
		newBand(200, 1000, -1.660756354e+05, 3.035416736e+03, -1.736889823e+01, 7.159834020e-02, -8.866799300e-05, 5.798970280e-08, -1.530037218e-11, -3.731927230e+03, 1.190002218e+02),
		newBand(1000, 6000, 3.293486700e+06, -1.199850628e+04, 2.104406814e+01, -1.399381724e-03, 1.933173351e-07, -1.318016127e-11, 3.166400170e-16, 8.348433700e+04, -1.155751024e+02),
	},
	"N3H": {
		newBand(200, 1000, 3.242576060e+03, 6.692664890e+01, 1.766142217e+00, 1.487411419e-02, -1.539086440e-05, 9.172303550e-09, -2.337205474e-12, 3.392069700e+04, 1.513752057e+01),
		newBand(1000, 6000, 1.170469241e+06, -5.102451990e+03, 1.278288910e+01, -8.409487160e-04, 1.592142834e-07, -1.512289051e-11, 6.102906630e-16, 6.428344470e+04, -5.513119108e+01),
	},
}
