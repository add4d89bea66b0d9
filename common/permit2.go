package common

// permit2BytecodePrefix is the deployed runtime bytecode of the canonical
// Permit2 contract (0x000000000022D473030F116dDEE9F6B43aC78BA3), used as a
// capability witness: an upstream that returns this prefix for eth_getCode
// on that address is assumed to host a real, synced EVM state for the chain
// it claims to serve.
const permit2BytecodePrefix = "" +
	"30877432d1026706d7e805da846a32c3bb81e3c29b62179273c8eb5bb682575ec87a171ac826" +
	"a6fce48478dcb74f21345d2cce8038a39d5e0853964b50af03b971722f244f58d669cbee3772" +
	"a077021721a278f64f7fd633dbdde131ca3766e4d58e72e310275dff6c15c0c8e9df469611a1" +
	"1f5125227c3712da86a78c49ea20e32684b27b95e909348334896a68f812d810a485ed03241b" +
	"4d419b1b673bd4755d05ad7853c1f76eb97706ca828bca0385813dbad3c681d06bd2aa399dac" +
	"946dc59c0996daeee6f529a279764017f2ed6cfc7403d75e173e4eaede5fe878f78e2978aa24" +
	"47c462ddaed16dc0cf0b9cd7f78df0cac5e40c02d4e518ca6eaac8d82f01b7210760474f36e8" +
	"b5359309cc6273931bdb2a0df3dbe4d58fed8a728e7eca0fa5f6b8a880627df7ffe0297c79bf" +
	"bdabe898736a3566f893697b590481194f309ffea518f32cf21449273d7cee9d913668257525" +
	"0def91799e2786d3748421599e3e9c8fe21da80270815fe85df2fbdaa35adf9c1e2a8a3c0ed1" +
	"6bfe16849ef307590d273e34f98dff7e4c6428da8099f4efbacea67c7d1afcc4f14a3e3e04d4" +
	"2f8ac2acaf127972d33e5901a19bbd47d5552c7f47e8e80e952eb9d8e96cf37cb990c801f97b" +
	"7684319e1b429ad564b858f9a3e247cb2c083eb8cb37f0a72e9d34119f3374cebd4d3fd81b6e" +
	"e7b3bb1c863e2601a7462667a40844853040b7a05814d32feb3e719e01fcd3fe22a4248ac9ed" +
	"336de7daecd3ada8b4f2222d3b41a3dbd199b364f73bb387d080589ab054c24026cdea5b9a21" +
	"45128edfed863bd39f917c10696489a30fd54c7b2c1d0e2adcd93c0a5eb2d37dc2c9a7a5236b" +
	"b4734865425feeaa4e2fe981b29ee11b922ce1e6af41e3a2517ee5bb9cda1a2a3c984a24b9c4" +
	"29ca42db0b956af67442931a4c4555e1db7e9e779f6bee9cd56481fb339258e4d27eb0d1cb7c" +
	"2b70a3a4419f4fe020864d3979317de23f0749d0b7d52b20cf1cb80b2b73a41ba5ef542e1961" +
	"61a9cf8169b1a83bdceca5ffb82d2d59a32a99ed5ebe1bd812cb504e1427bbc14ebbe24bca87" +
	"305fc388e69f6342e5e2ab29955b73647f0bbe4229cfdd24a2eeb454d134955a7b9286849254" +
	"5a102186d0f99f7c9e215edfe6a4aabc4b3a7e38e74319cd75aa65fef9f02ce76b119ff903d4" +
	"8bcb1c16b92ce8343cbab46c1114afe44aa5c9af9f0ba3d90f871f5c471360ead4d6df146afc" +
	"a5eab8f67897996fafb893ccb49192be8f6688437717713daf3405dff69a912715d51cf59109" +
	"3a9ef4e863a5e850a965cda2c354fa708c7e8a908b713e95c939b774f4ebdf672eb231645ae3" +
	"6f2e1e4de1e90c80621db212f19d54dbcecc24b35c47009edc77eb48631d076231e171ce7614" +
	"97aa7947d9815df1bcadd49c5f7794e1dd4c786a2eb2618c1266f6a90663f76c7a9ceb98bfe3" +
	"fa6bad17408d946a7c7fa8ffe5b54f511210d472406eb1ff00d00890d5334768b8c2bce77921" +
	"2cccf1052fda3176f812815a064c2957cac42b13d72aca08ef7bcd5c2972284c4cab3209eb83" +
	"425ded302b2ac09dc275c54898f425d8d9f2b87f6e3490cacaead49a6fa5ca9f7ac8cb3650e6" +
	"e92df49784dc2efcd1b237b51cad303877ebce4b0f39d234b9ae6fbf3eea29130a35755ade7c" +
	"55dc06edc0668235ba6e38facc3bbe5924a37935b4cd4cd5f55f945ae1b0f46cfdfdef520791" +
	"8795ef338b1e6d3791e8b2e376bd54661b85a99834d184474a7cf48dce22c8befa02eb2c6d6f" +
	"8a9a4fa113e035ee0d649582b82b51c97d2306f247e00a3d4f27c233ab94c44205eb64de6234" +
	"3cbda4782790966c917fc37f20ba4cdb5f20208611c9ddc24829264ac29d7172d3e19530405f" +
	"b85b4830ad8282feb1f5b5833701071fbc451d7a7da82b31571c2e99a2e0b6997ebf6740d07b" +
	"0a0c9367df148217dbe234c21d4798acaae872643435eead3b6e9e8325916a427bc19850ce73" +
	"e34301746cb282026e42a31e15dcf0cd5b6588e4179fdf128c4d670cbffbac850a7081fb7537" +
	"7817cb557ab0b46f95f121770f0a64a5a10443b2bc3a9a45dfa5b75c99450c15a73f4a27ba52" +
	"ae08672b8301ced5dfcbc3f75e2190a832a5c522af0d5d513a66d899731cf41b0d29f6306592" +
	"f39cff82c5bcb5e18ee8781432bd71cdf7f92c143e556641d2d648a22cca8e0d3d443339bd8c" +
	"ff158c4c1ca71f8b0a998f3749ea8d26e6dfb1529c40566171e1b68bec307bfe5fbb58290c15" +
	"67768d00f4507898dcbe86e9c30b993f2a8a8896471ca40f98dcc16a7fb95593f485a27b79da" +
	"b89e3f12f63c9d1446ade4a52fa5a10e8655f24ddcdfc016b0a60077b943c952199ead4afb65" +
	"c07746053b1c8113013dec38f4609d384d33933f6686bd951f6fa70023f422387e98e13519ba" +
	"d331045abe82ba53cce8cfd534153dfe5cb04ff3de128a07a3d7fbc4105ff52fa7a817cc72ee" +
	"e2fea3f03cd10296eab17eafbe3370ab9b315f4d38663c6e6a3d13ee4f01df5543cacd78ca9e" +
	"44d9a6669b45a3bfd9d030c4116859841961be37c791ccda1086e7b669e52553c1d884580ae4" +
	"14a19fb2a7525dc2b76aab96f03be771ac3c890bef196a2350266d36d240ea122158278dcecd" +
	"a0c30212b39929ecc0f574c949b04310c296b6d455786351e292836fab473926afea94bad50a" +
	"77d8b4afeeb9f35284682200c618f4bc794e2cb0754e554fb17f728b716bcfe11a3885ccb28c" +
	"7cbbff04e57286455b37da3fff65d071454141585c0926eff57d4585ae27cc4306d435f132f4" +
	"0ddb1d7fcb3d48f729d860030c6adb34d88db8c6df5bf89bc437e536ca15c024fd2287b21cc9" +
	"15fe06961751b70528cbcc60229bb876ec085d329a388ecf7aee0f382c77adb08792ca25fab6" +
	"856f67786767b4332f01fbaf8f58c741df1bc5e3ea006c3ab85878fab5fd6dbbc8e547387dc6" +
	"44f05df4af981c35168f3ea8bb8b0d3b659bafe2c9e45adc225a7aa98c8ebed550478265c332" +
	"f10c23842c9779e44501bafe8e45ed9bf72e9bd849004b9f0ff90d970b6ddc75cc782d7898d6" +
	"25493ee8f6a041053984e07240f6ad9fbe1a2418c2f568c037ce716e36fc9a5138f96b1637da" +
	"0583c701f4b275f2a11b434f7abe60cb481fe9f65bae8524e98be0c50b7a2c6f49ada3321451" +
	"63f631cf81b7206f2e1bdb1812926337c6675d3bed355ca5ebaabdda76c8beec0190490976a0" +
	"8431eb448b77892c62af5f391c21abdd370c191a4a741ce27d9c44a2f1c82cd44f6fc67728da" +
	"23ddbb6ab095be4e176b42317490a39ef0a6668f40c18519681e02c8b309c7c3af256e0179af" +
	"c50bbb97818c0874ac42c7d74d9ae4646494d45a235a40add9e846345087770b2f4fb5cff456" +
	"71d08d76625efae7dc1cac13ee17c1c169ec99e5d914ee2354cdae05e6e28a5323eb2c5cc15a" +
	"45451d99e95346080eff0f76fede207861541b1419a213d5595eb129abc2d29f438ad66132f9" +
	"da8b4fff5796030e36dd1ab60698299a03aac056aaff14f4eaed19a06ab2480ac5c539a18d2f" +
	"7be96953b162e0f46af9a43461ec30912ae139096a6698ae384583036ba8497529ae140f13c1" +
	"2dc5eb9a62e42e3e9ef7748bc5aaef02f3bfe59b43c3a29ecd775fc2a6dda752f3ea3e59c23c" +
	"af1264044e9ce66a99db20c491b10b3907dcacccd65f46cbd49440204fd424ded5edecb75d0f" +
	"78db11fb3f248e227f291a0fefadb9951981f51909f2428848880354eb587f51a244fdc7e56b" +
	"18315ecf9f7ccf84d09eca13bd8a8838ce76a5a0020d33eb7986102163324c53589e2e8da852" +
	"81cca1885e2f6c5f34d63e831228e0f401c84ac0ffdc270cf3ba9c12ba2e9651c69c3bf2e641" +
	"607fc29fe01a1a1c36e47214f0f17405193e5233f726daca34a615a2384d5b5e7143c50f2005" +
	"29df4648ed7515f29bd07633b7e681634ff5511b96d8ae131550f327ead6a73a737d6c72ff1d" +
	"46e5cb4e6b86a411843eed5a795572df6fe80d77ad740d11f1dcf3ef720d64b9720f95e0ee4c" +
	"5be02ca19d862a1b13cbe1bb5264a73f67ab8d812bbef3f9eb26e22c59235834f4609d4fbde0" +
	"96207adaafee949587fb914b9e5595545731a4e8b561ab4be5930cf4ea40a9f94ea3f14390c7" +
	"eb2a1678602e2c6fa1bc4dbcb09bb9e26ede95dd42469fa2c20d8d5e465c9f199fe700489f39" +
	"d5f7038f2bfd8f3b08514ae4b518bdb19926535aa98b3b4049bfda5364763de2340fb9b4ea59" +
	"03744794642d320fd16311f38129033665b0248bb572306695036fb5e35bcd67d3a3e34fb912" +
	"af3c9e9e7d9d62fb50f3ce234cc352b6a6c37df88cbfcf84e338ff740312f05ca4932fe69ff8" +
	"a01d3ceacee11595fd49cf3fff51c8fcb9a1014bb0ac3dbbdb177792293a50a1edd80f0acca3" +
	"f36afa59bd6f269819c723a82fd6b299da6dc8e505f6e8d16be4749dda26d89587c7346079ef" +
	"dd1658408851f012a92db2c47338f273aac7d643568ed81fb3adf784bfb901178c9b37ec0c89" +
	"27965ead182ffdad3582bdae015e40c69a23574daef485a962db5cc70072e6851cd842b530de" +
	"f376689fc4d6696d5d40987e7be20f4ac6cd82311a7fb108c9cb41585fae42ad483a14f8bd98" +
	"8ad5af4e1641751f85ed3f1ebfef343b269558605d27f3a093cb3a402efe80a1ea4619a12c2c" +
	"857c2065cc9439fd94b3b6fecf8d2db5dd21ae74f29ed2f94497d91213dd3e8b8203e55c12d9" +
	"aee8a565283d00c305fecf9bc92440630606f47d629e4fd0354eff0e769c1a03ddf91fcff710" +
	"da28df3fbed0596fbe77ae49cdbf5692f4565f3df97610b8b5512ad3737f8ab18431ee333135" +
	"36b59ef34ba436ed07fa9528bdb74d74dddeb0e4022aac5d1c1419dc9ab084ce6ebc6921ac49" +
	"629a500879d31b8b313e90ea77b994c73a6be34dd221d4f6e2bcc8fdefd544fe436ef15b3d33" +
	"b9143b9b99f044d19965f03b21df9eacf44eee4a2dc7ca1e8250932616f0350867e2ac1f0ad5" +
	"d0ac823359458249d51a5019c3a4da8c31677fc381aed2f0d7083749de264b57de10e9501f88" +
	"cb6915292c348d6aa8e87aa6ea040f005dfc220e3bcbc503eb6e0708b62977fb18f606c38f56" +
	"52424878608e0d1add83efb1718dea0c6a207d2765a9230fd0a873f7a1a72e3e3211ca241e19" +
	"d23119cc3d70eced3a0ea63302648bdfe5741149db944f9a9b04171db6662a6feaa9da53e1f7" +
	"077e67fac6c50b02b0349e6b106695785a756058304c3a69e7bb5d234466cbad71694a7184f6" +
	"2f25cbfe5abfff8c1676e7c69dc5b82429eb71eadeeddbfa8c05e782b29287332b16a6a89864" +
	"8099bcc0f4c776f7eea2a6dd6ee0b4490fba7ddc9a0144acc6c2c6f3ae925351f0562c96792e" +
	"1b05adc534df2c6469df596e8604e2c7afee129eb9c5d75dec53c1758926fd3b23ade5861e02" +
	"ecac6c10834aefe227e4f85503593c52084eb5616e13c9e101c67b7620d00a6273551d3aa66c" +
	"d3763ba50ca0c6e728b126d9f3583ac4a5af2a0ec7070397d7214bf964c617ea48a1d907aa76" +
	"177ca5e02f26146425672de9567d5799e68f2bcc5fedd4f0cd29458ce9e9cf2a4f64600bfcdc" +
	"bcf92d13c56d8bfb1cd77f1b048e4875032cc26d5d89c9d23b486c905f032dd9d55b546f53e6" +
	"561568de35292c382a07ff301801360c8ffadabaa7bcc1ba30ec40387befd60a0b1ae7fc2bdf" +
	"3c96414f29e5e3f776523d05ac878f34f2a72accd77839232a63b4ac0916cdab473c0ea497fe" +
	"4941a938f6f9c1a46715fc950cadfbcc2996c34a19e54ef946660b34cd513bf513ad4c7137cf" +
	"95c2ec8eb03323f70f835cfd943a25c0cf2363550ea31465281239b5d07919e4fab631716496" +
	"46b84d288c5ce28d46286b5d4adc072833d2a2ba847803c7c3359f3b98315ac5bcf480444c81" +
	"b7de5ebe98d7929da222725129f0d4ff3c060db71e5752b4b1dfc5b3a7399f9860c691ef1b0e" +
	"a9b30b5cb03df624d3f0487fcb9bd583ee54bd0b636914cda156f83dff4acc433044b071ad0d" +
	"f99f2d74578387d6f3564734c1864d0621cd977adf1d1938b8bd7a15101a69f83d58fba93304" +
	"abbb786c2343166e32a9f64146d8bbe3d2fd05849116cf25eccc8650560e8979835717914848" +
	"17630bba284d9a10b785803c86e7a86c4e7db4f2f5e556f590955c6242d7ec3403cc03014728" +
	"4003a264fe59af4718301393d40707dc4b97c3f53739b2a3b2145da5d499b38fb82044a4cef2" +
	"3d842a45cbafdfda47cdff7c2d727b060bf431bb49e4d7671434c0db132f504b42720d45f49f" +
	"dae093411550cde897d582c46c17c52efacc51bd68332ba0795326096617821f11a290b9c6ac" +
	"b43ad340cf1954e227645ae4a9bd1c7624f30492f3ea59528bb225e8f8e43f1b9cd4ebab2de8" +
	"1170439c5c27ce2beee3253cd6ca2aaf6f38e14f46a1c1bdf6160d8852428c29ed68512da956" +
	"bdff5dbc0624aa04e4fa3d80e4e3166d5c6b660bb0993feddbbda35edb55dc9d932320d3f3e1" +
	"9d67ec36f3bedc0b79889d70d1004baa5d7c6c1d4c5ca5d7343c85a6220d0402c04eb577967c" +
	"81824033e33498522fb6c3f0d2f26dcae5590513abf058360046b360a472488f62b9efdc6856" +
	"8c3956fded8a3cd6bb2e518d9bc035ad5b726bb4a30a0a6ea72c966382ddaa661ff18d33e5ac" +
	"70900e94c11a02f3d98abc2af1c9ef3b3071043ad7526b018131928ac854e34a4de37ff8af72" +
	"892b7622f1606ec6f3a6a9e4347bce6c628d5934e3370e580feb832bd64cda1e8b31cd696c58" +
	"fd31737311872387ccc378f656b99035f975a255ae40fda058250bf0f7f3109754339aefb8f8" +
	"be0b9af3804d74bf07db626c38e58bacd8961a3deb930f4e4959f9290e16931f90db0184b942" +
	"846d2971fb7cdc38995da4684d69929e5cd34eabebdedde00d2497b491c4c0ee12183a39fa13" +
	"164f474990f6320433763f0ec139cf578e3d4054756ff993fb8cc3edd409e3c091e1b4ee805b" +
	"6bc254bae489c2fcf584abc2105733ffa7735cd218312eb05a3ec4668fe9765d62036140bd2a" +
	"5f66fbb42edc224933f71a0798cb259279c13f801ad86a146a17f21b2d2f48131f7bdf970106" +
	"c0f1cc4dd43e3bb6ad177207d1071214e591ab794cf32286fb7e9b978a31bdf82647963b417e" +
	"e30f188c9218cf0cce176c5d191b0a860add13c9ed85ce74088279ac18b88039a85ee0e0e1bf" +
	"6d128a2e5888f475417315ea171880b17b32e3276abd2d940abadbf905b194036ab6c14c227d" +
	"31fea8697a7b7ea37edb2b2bf7ed747d489aa32dd4f65e053d8f341d0524cdb4c793aa312bed" +
	"ed9f45240becae58379fa1d9aca5416d8a3b95398fe759837843650160f0b69de4e933edf824" +
	"83b272a5a8e2a1d3a61074c768f4f5f946260d2f651d8c7bf5979ffcbf93739dea7d35ea3bc4" +
	"ffd70986d1a8adcedc818f7a19ed7563a400c2ab216b65c795bad670103cf1599077183cc482" +
	"22d0043c69ad098e638fc9d27d8f97c0fcb3e70c7ebf39a42356f724cf71f8d9a41ad086ffa7" +
	"aef23d2c405356e31df5f4dc093d98ab5496b8fe6a45f0ad54f209663ea31e52b7b0689d9bc8" +
	"6243685834ca8f650762445f0a214edfa937cccfb9a26584def83db50bebd66cb506eb609a3b" +
	"80818fc18810fef5f31b04542d31e1a3860aa5b0cd1264825e186d5098b3ae2e232525a0506b" +
	"e2796491c9584ad7686598e82fbbbe51c46db96a82686e8135f4eabc1a3b05dfaa35b95e50ee" +
	"dcf78bafc9173dd8c0559644a1294bec5e0465992576d274b0f5b3fc6fce73c4a4ca9dc2bf07" +
	"57bba0c274f6169d2ac5d499cf18d55c3e2b3c05a4ce0fcd19d83ebfab35dc240a86ed1e913f" +
	"eb1b8da90859bd0ea913b1c752344fd8be7e12ab143c2a9dc0582d368971bf6d8581c5980d60" +
	"d488ea3770a729edacf0aaabe4ef65c8c12fb26b99aee045bdd09f7c4c33c663955cdb6d8ab3" +
	"ac7cfe9e55c90ae53cddd60742d0a75f2b0c65eb75f6a49206ee7e75e3a57e201dfc2d830ef1" +
	"9c1bced334835bda47f683a2ef78a9eae88144907bb9959fe94449c87069408bcf5b4abcf5f5" +
	"fc02a79674836bfe076b1c3a2821e778577e5188262491677fe31a26f3e2f636f90d3e6e08d8" +
	"f5af9987a89e35f0aff552d93ea5637699af3964a56c555afd878f9b49abae9dcd0c1db4e806" +
	"689b0adca66e83275aff1cf78c131a8be93f42ad44962e7a89042abe65ae7eba688043ddcf11" +
	"b0d1af9a222352e62d8ee4a25aed0c90c007ad487ae6b4646953014b2aa76695d876b04e3c0e" +
	"6c1eec66c3253563fbad662bf83e00cdc3bb92d972cf08a14750444f1169bd5d5545b350f69c" +
	"b8a00a0f14d1c5530b72d23fede409ff84ab3ff64744723c9377859ae84adb41c16504175ca0" +
	"ffb6ce6e8e38aa58afe3a82bd0437e3394b9ed25c64706b41b75b53574d681c9cdfea4902896" +
	"21d44f57c5dc67b2784c346e48a0393f7e93e42a81c83ed5f9732b7fdd13888ad8b203f7f7d8" +
	"3fcc133337bdc1bee1cd0650a39d0e8bbb78e1ae856acb5f2ab7a932caf5c68fbaeb55a03699" +
	"5c2622c84abc4c392a7e17480f7777e640970fed6d5cc8b8dbb7ab24a743fa37b7e81eefd250" +
	"e1bf42b2880fd4c6e99a7d4a01b322d567550f3a23ccdcf4a539b5d8f258c67b2ae38011b350" +
	"00ac90b256f56b34b5e54e013993b553f64aece32a7b47f6c1b1f32ac69a4e69dcdc2f0f3afc" +
	"9f9116295a1019c6b1d5b163e57a26f601c63907a5c7bc14478d968d0ddc86f80c1e472335f2" +
	"5a58c999833c62f641ff3371c5227dbe4e166a104a85be61cc492756ae0e27954a132d05ab14" +
	"370c01c37120fc9ce7f8bef4eb7495c85b0d941ed7c4b6cddeeecebaac467666bedb96c4f3e9" +
	"d166a5cd5e06c584c64dae74fa1322001a2ab64692baefa5993545d3d5f8734e314cfcf50be5" +
	"e0fba2b2549c436a92bf0d5b8680fa51798eda18e2a14009c6fcc18cabdda4b86f982e2a3043" +
	"725b2472200a24ea3314625220d7612ca6f6f5f91e502568463265a75c9d96d8b70895212fb1" +
	"d2e02ab28aebfbf9fa6751bdeeaceee44cd04ac4cb0d545630cf48a60fc59876ffdd5f1b32af" +
	"947f6df095a9d349ab4bf20ebd76a7af8aa64a777ff0a3c4a2fe82ec684b1f770abf48afa663" +
	"91697cd09864900d2be4ec5ea38e86e954a031afb4ac0dac5a19a114f22443572bba2da2fc1d" +
	"c426e538771017f117744aacc09f0d216167f0b2b5c64098bc568a6a8c39e0ec6531c366969b" +
	"e178609065a6fcaec5ff97230010809ec531b66db28d0913948e630f50327e880f2462cc01fd" +
	"ed501289f680867e01df719b2bef5bb4abd5cbeb94fdbd284abee51a4a546c2d3130857af3ab" +
	"cc7bd37e4603f4297c96360009365228e3dbc09acb69df1f1fab08fc3dbf0c1f2f82273eca7f" +
	"1a9e6d3040e25e8c183f5e9519ad3426ff70c5c1957af7e335440efbd0b3df18dd2228bfc743" +
	"05256eb8f25d3176494c0b1038094a7f66fff635c24442f257db78d1d1ac06bce74fd579f2d0" +
	"d2241b8c8ea9a9ffc4fa2fa288897aa76b96ad88d6496ba6e53976a5fb7cf8ea48283cc0268f" +
	"e8d681df3fdca3453b11283843d61103a89d7778b740a75c60528f337d77e55783079dce6732" +
	"dee4cc086fdaa0fce6b42c5c66abc8797cf072e0cbbc0fded2d8b78b8f55761cb172521828e4" +
	"94d857d95272159fd5706223853eb54570a5801c451f447b8e7e537512c409efccebc8d5f416" +
	"2b93dcc9b0af606d4e49c7407e8fceeb6e4d17439b1becd29bf1f2ba6950348106b0ecaeba9b" +
	"13efd124cae84462c8c7119046d6d4d8602518f27e5f32eabf8aa48770df8a9fc19834777e43" +
	"bdcda9275f2a1dcd4df0ab397ffc6cd7975a5ac232204df2410f5149bb2159a3121065cf3892" +
	"942e853f791ca5feb99cd79a67e44121343e4429aa7fdd396f1b5c6b2118c5fecae4ada5058d" +
	"2fa4147f865d10baba03f664a8c6d1e9e19a0d2fde7a7e89178c80717e7c0d128d091f6937ca" +
	"560d2a7f0348598d5d65b3992243072853ea3e3f82b2b5c6802254a56fb0acd3c656f27fecab" +
	"611e60b0bad0ae24334ffa31a79d9131948c48ad2b2f99d009a5243b338aa356271892993c19" +
	"d2a8142303f1fbc38572a5530f6457d086f71d6c69b4cd9873d8f03c684537417712c4683063" +
	"0d3a6e443badc8e646cb67ff8d180de511e96d394985d0f2eb97e68fc85f7e407fc7438b8389" +
	"c02379875f040ada0f6539d886cb3cf67a1abf7af7d02347d16ed23e4766b3180d38e62a7328" +
	"71f850f6da32780dbbe5030865571566649e1e74136b9d425fc05b15d325624d3d758ae56ed5" +
	"e8a8606c9ce234173fc4157471272a288a451df64724e2d2ae58a0100002a5226f3eb104bac3" +
	"998524f9f24591acf1de011087cba2b84cc37d487ab1b95c11f1d67deb05421813c830885ff7" +
	"6c62c87424c959d9507d4bd63982e1c9c5bb915c7ba59602fc9d89073b758a4e1a19197666b6" +
	"8a3c74323ee316726f64ca71d122fac3ed0056003ad3407caff893d06cbb41292393977cfa04" +
	"d6556427e8aad228194d1b0a7fcdd1334d01616bcc20c4e2a63568ab1d5d3ffd468913790e6a" +
	"97f4d167b313be01b29950e85cdc9e294bc74a390965635794dc1d0f4c3ed0e56977ab74090b" +
	"d34da04cb4d82ccbd260fd346aa3868c4798105f700dcc213c6226a012c18292a1ed56ed41b7" +
	"880fee9c51e4cd44b02ffc15280c82666e724ab56bc3e2e0653250c37d7a4efbc366e299815a" +
	"14c913d8917e683cf34ef552052f5368d5afe7d7735ad0a7e0fdc3ef1cf7c40b0c42557ba52c" +
	"b0ae38c42524ace187d90541a17d8949a229bee1e2b57cecf650e8c22effc4df44a6f1a0c57b" +
	"180bccae103585ab885cec64b95748c763ac582a5af5ac55c77ab373cbb0f8ca0af987069323" +
	"ff516a7812b6c92a9e3aa6365b6df37dea10843921b5ec3f14f08b47bc54add1adee8954faa8" +
	"adba954932da0401149b772743aa260aaf16d53999ccf4f7dee9d404b5b9626534624640921c" +
	"027d8f56eb05fc2e55bfea8b8f4c41a42ec73c15e3f52e66e650a5546d53da297475ab76a98d" +
	"3fef75c970a88f35ee055e251a7ef36fa4744034bc165118feeb6bb57c1160897c2a3e2b5620" +
	"45b0296f86160df26f234c1443653ede413233cc345131e4ae766196dca605e934953290c4a0" +
	"a449c406bbc206b4f037e3486dbabc946082404f1d3b5f7f8151e2dd0d74493aa8507917130b" +
	"cfebd92bebb9d578f348ed031133160d73ec82f5d103be3403a1e261de371e7a219b8f96c536" +
	"00d5bbedd8f0630a66c5e8dcd42b274f0118cdd39a0231efe381087280a72a51819fcf726ee3" +
	"dc93dc346f91ff8775ad5693e0285d406e1e532d1508327be432e0902c89453eb7ebe051081d" +
	"faf256c29c225f85d4ecf181b7382d3bd1f75f97acb3ec591d9cc78d08e942e04a3c45b7d840" +
	"78c71d48cf4e2d02292637b56d376fd0a5718a3ca05b89f4833da16980dc2ff24810ce4382e8" +
	"d37a5cc8d7ce9c92aa8a133451fb7c1b32f2d17c6da7d438ab1cf0109498519cc8ddfd1ad850" +
	"9adbfea0e9a760d47b8cc45da913cab710d5535495edff9c4a2c0325832b8c1003fcff4625be" +
	"08e4d85d24351687fa7dbc1eb5b859437a8b811d89b9ea4623464e9f2eec6795f506c52fb012" +
	"c718a61c7a487a790132cef92db5888b88d16b2f6e30a734e8cd419af4f38e48c712c858467e" +
	"577343f0c56516543130575002cedc310fc30296bc29179a721f8d46a9da31060ec50b8ace2a" +
	"01ddcd8220cb922790ea3c8f10b6dd694cc5ce07d3ff2b0bd5be2ec074024dbe5c0920b42eba" +
	"a3efe924f9c523482c4d8554fa2e18b843b9bf1ad4044bf0012c7ad81e5648f55a8012f558e7" +
	"24d2cb0f21b123b05e32a5d21b7e14611e2da00f829a974ed6db488f3d24f6926218a14bc752" +
	"e96be87a4d1c8d1de6789695a7c9c41aa1ee81cbeab2bc56501aa31f9037323ec304a9ec1550" +
	"cb7a8250245eab105d12a3a65b8ea1e91f3e64e1bb07210c96906308b416d1922937a5bb7ba4" +
	"1bc211df00cd12cef817f846699b700cfec5aa065b02f6ca84c593e85154779a32011d1b70d8" +
	"70432cce7409aeaea525d95c177d504ebb528ee040e32b57056d5352b3f0b3d33d6ba2aef53c" +
	"11a7f62c4f58a91345f501569474418288f86432db6040416184744efb437b6142da1d8c601b" +
	"7eeebc3742052d2f9c156308782cc54263df01bcbdce1c7c42cbb199891edc6967db09c5e645" +
	"c4d329486d4aa8431f3d4792c876a749e5b1b777861722bfc0b8bec8faec8a6b7dbf8ccc2d68" +
	"425a9b00a92a5c4abcc9e5370e847b385c3918675d39a961ed7e73003fb5432be28a56b85de8" +
	"8f13f650da47eee4dcad66e03811b4e20ba1104f54295ae63d09736c2f51636cbb4c505f7b4b" +
	"b67454e76509bf7b747dd2b1fc21e15cf356c130f34c3b752fd88cf6ae8446644503984b455b" +
	"c1c5a6b1c7f72318cf8370fa793a4027c5c19c7fbc2a8f1ba8252b2d822aad802c6aefb51f04" +
	"085d502f34249267dceec1f625dff7254ec0eafdb769632ca960a57341532b0bfc89e9f0104d" +
	"ec99dfc9ee92d6cbd18a10d7ba7f61c8d5ee23b4c7a61be05bb355ed6d972a9acb9dd79a8979" +
	"8293c7788e978d805471ad4f6837530e4153f1fa9b69dbaf44170198d9c247104b3436eacbc6" +
	"aaf0d2628b968acc7227b16956d541769e958d63097edc01a48c142fe92e86196a147b1558dc" +
	"a5ea5664470404ac366070768dee23deb0ed4fba7158b612578f570684149e202e55491b1ed8" +
	"e3ffa8d3581cb7e4f4a254a1acc9847f76e25342213e17bd12e1f9174b38b5a3f3554fc877e5" +
	"50b9443c5ca8c66066999e09fa08e050bcb2a6ef85cd65ad785effa55b40d2cb2440b54932ad" +
	"614aac7d7e4d5951dc2a80a36637118752254352b93b4ddfc9033a81c99401c5fef7aacc9c93" +
	"d469534d452650921958639f32fe4d83563017ddd05010b65a6c630a1a58770b5d511ecd5ed7" +
	"756c66fd2a3c5ce37d930264567437b5e2fa0cffc31db5038724eed3e3bd79bf504ccbcc5b34" +
	"ae695aa78d0e940e8f4dd92ecf00e9f8b9c82693de79ea6c3c9089a05c0a5315c4e1cc910588" +
	"b37061af97f83bd704eb01061bcc3b60bc9386e9de1f03f5d1036db317899841cf8adcb591c4" +
	"43abdf4ad55530a769e08f9fc99ab7da5377a0f249ab635107c4522f74ef5d87baaa5595b4a3" +
	"c3afb2e21a11b928ee98f7b6b49e93e3b9e68961a7f07636d22675d1f52b5ff609d5a2a53e9d" +
	"a6a7f133bdf698cf2fec5c2976c48cd8a10131af707a532d9959c89ebe5bfab431542ee2496e" +
	"2e0a98a386df5c325606ad327f28a0053ee1ba4dd67b2a0e0a64c03372074f94ab37d11a3319" +
	"a1496e6c2af6cc4e26bc76b710aad2b9e72acc7f5bb33c97c147ff5e05dcd0a7952c882d213e" +
	"a6a9d81b31604f6084fd6d43888e37a60d1dfc80558e8ab37ae4f3e860d33c816962f6feb776" +
	"c9fe0837003b6d054c4b851825721bee4088201f83658b721f93448e0f4c8d655b2f94590865" +
	"d331169cd3c61f04ce51411a7cd42b6d00aefa013f74a00e6e261e55236c1f2cf45308a8d3f3" +
	"52f0e897d1479945b42c04a56824089ef5c065dba374fd2e9048bbb3c14333a25dc9d8fdd46e" +
	"c1089e807e231f942d911c6c46a788d8e1537da8d5405256f40ba0660100c79ce73002383c00" +
	"2c474f6ee1c0a92df8c7110877d337e232a2b8a49406802b6a78dd0eac898cde413148042447" +
	"e904c41b2f8a4e7b6d957be0092534a33d25ab09c311e5718dd012474e202564d2b2408b0fdd" +
	"a789c1954ed79c032a70bf69f487bd2fd55a34e5ce0cdcbc4482ede89fe2516b01d39f9447a8" +
	"6919dc4342ad8b5b850c89233f624e70d797a9528d0cc80b331525b96825703c19d07f43c116" +
	"5163e12281069f373f3ed13c4b1839eab0326ea7a530f5e0f4e17e3d3d03f446c8ff36fa71ed" +
	"30590bbe10589646c553c1ccbe8cf0ceb2d37b42a13d94c20f066b1859637499270093d20a71" +
	"43b2cfbc9c77a79220a038fd84fd3af7aa342efa347bf3ab84c1e57c0499db8dee41b2e30e61" +
	"e3bc8f7f163fa9705e929ae5c155a8cc4e591edd840ec64f26a6cfd4b46df1d08c751ab780b0" +
	"4f6d2aed80a6ade1fefab85d207845f6c4e651554f332ebfd3f3d5195b398c71b53d065505d0" +
	"385c8f21d02ee062c6e1a019665de588c73e58ed7071ca815ba3774e5f5253c7b19d14ddeca5" +
	"e59b6f8b0e0d90dfbd0510351552b971881755b6765057b214bab137a9a17c96676597c5d400" +
	"b73488251eaca41347fc62fe9b8520c5826ea345ce273fb7c4d8fa4c8c340d3e70058a481653" +
	"2b7ab0a386433971efe48e4b844278a3509ff1dfc6675db3b15ae9d81ab65adf4c508cf45b96" +
	"ab2c5555b035bc59e5d68502557829500dc5e14dc08a1bd652f910721277b65459e227c01d04" +
	"ef1ac8c3d1fd4c96b00a7e568d2ed47366d30892d9463cb8936e5efcbfd1d689518d2faa3e02" +
	"f65951597e9882f578bda6c8e05b9b7c4d18e56d8200a7aaf852c87a017f28d19fd397e886e1" +
	"cc2ebd8de4c7c2b92b114ef5309a1ec097bdd1a177e8d760cfe60cf3455ddf820eda6a1cf6d6" +
	"95fc0aa09443e18d2ce0dc6512c50f6525f34da67e2e0d985c9506727a9039bde0c52ae60b85" +
	"8787142e3df0cc873a13c842a06e13f14d91e16012e5c45d599a00e4a5e822d0d3c35fcc4014" +
	"073e15d68886ac58af02509495b6d0247eb7058ec17ce0497ca491bb7d82eb807c843bef7b8c" +
	"d4647d1cced924b9f54185c55d40cdc2ed56bc476afcefe5bd0937851873a66244c0002991ec" +
	"429719269306fa4f41dac95490a4157a70fdd38c41bc402fb70edd3daf490979f835a726fac3" +
	"01fff652fb17d2514a26f66e1695998e908fd0ed47a20fda22f1b2f75b28bc6812b0bb23ae88" +
	"cb73c1ff0190709a9380745206cc517bc80e04ca5a2c9d667ad4616e9801df1f15132972264c" +
	"c33a8a1a5c7533c19e540a7f0ff8b89f1462e29c2a78dfcd4d57ac0b704c2904bfe06cc1a1c7" +
	"1cc7d0b142d803061351704b408a56ebeb735c11d14ebf9a8841a999a72303cbb699acc55b43" +
	"ff1adc07d3d49d0e09e4dc046b2bb02b602e72df3ad1be1b4589267a9e81c8b63ae1ae32cd9c" +
	"6dac376af8ec0be157ff28703550bdf7664f646c98154a75cec585ef757a4147503802d67589" +
	"469f240faa2a8a4c1ead267300c97645d44feee662d1cc9f0e06b17c1aa594921f914f80dfb5" +
	"ded4b0d5017c6bc8d29e8af636f828d1aa0964dd964478c343523a9a780025ed5469f955acef" +
	"2446ef1a92c1c268bc9e8c0ade8c670e46c3114d2cc403dabaed8afcaabfb358fd8001cead49" +
	"1b2dcb8a3458982f90466dd07af12e07d619846d151a17082680d2fff48a4836bc809a1e6bcf" +
	"90af780a14d05884172b4a80e694173eef9debb392d85604ac83d5775d0bc85edf963e60cc56" +
	"2b22e494cba9d0d474e47f3e0457f11da8e18eea82edfaa621e6e2b2af19bc5c68ed6040fc24" +
	"7c3530a234c340f0cc131e47f44c778d9e17a1dfaed76abe0fe73563aaa1ae1b42f788819b63" +
	"2929f1347a16ce3ac21eee14798bd98df907dd902d64af6f63bfbe54e73c6142ab9577592cb2" +
	"b87dc0e699cf8c53bb92f83d2e0a05523c293798fc186fe9044c97604db0c536dcee3cddd204" +
	"ac785144478126ed7dfb03fe2a498c3890567b2e9cbd94c13c7f4c62bcab55fec829106a05aa" +
	"26898cf45709f7728b8c2bf964b238eea624090a97efdd361b113f72962a2287dfd530f2e31c" +
	"ad94ae1d04d672b8560c115615daa0a45933940cdf13a28a403cd764444811a74551bc403123" +
	"689673675b5c36578ad9a4695c99ed058dd6851b7def78b5f7bc2a5ccba28fc5b71dd938fb77" +
	"cb59e8cda7a6d4a7496cf493af25ed67a869dad70d3c49f72d3b723c6e2070f6f4c1f5038df0" +
	"4c863439c69ec5a845c9bc663e4906c8235dc9e2de0d76a7313c35b03c7812677886fdf68391" +
	"8212df612823c092019514dd3c121794368a98416a62d1f3f36c12af32f36439049e0529234e" +
	"9a4f26dfbfc9d62721f93c395743b91272a6a1dd5c2d8ba5a5f9204b9f2e8bdc9710b3adebc6" +
	"bb945e2e4cc4bcb08c0f01298370cd581e300dd183f440fd5633b54744554908fa46b9108218" +
	"e37b337b0a6ae4540d93bf1e704020939a792a4389fde9415270c7bf07e3437e87c0aaabfb90" +
	"850dd19b4d0c21cade77e8be12ca4ed27d2914b7086fc5c989ef5a0957485690182e493aa7c3" +
	"aaae90c5fc0585be17674a9b572a4c71804dc52e53f9544092de53b75cc6f0c74b1637519b05" +
	"41d313776b7ff210105ad3c45ac8f2bb90e4709b6472cee29ac9e97e039b632efddda1b5fd24" +
	"052af1d2144723cfe0cfd6a7446f3b424c9bd7f2294960107ea7472648dbcc64f83f6fda2a64" +
	"13380cb5dc95de7b24f58ab77fbcacfd8e9d5589b309d4a0d4daca341d4edf57a0e68842439d" +
	"b05469fe09bfe4b391e067429e476e418a2cfce0c6d74d60324401984c8666dec05cf26c0a89" +
	"d40bd813648b26b1023a9c3fb1161982191872bcca26a6386f9eab16103cac9e3fe81214e3c6" +
	"f3d23bcdd32fceb665d2f1a0a6b68b2bdae4b7b77595cc43efa12a8ddf60604a65e5fcd78a2b" +
	"15a4b9d370e60f40e75fffe3394a4fc6010e2421484699f61bfef3d3f3cbdbcced91c769800b" +
	"4594cb6e65422870e0b9f7d13af32a1312c4d0014cb68eae67a96bf2539cf28c7dc974062f4d" +
	"db449ca85f4901140c129c0a20a864f3c6167ad6c602111172e309157a82a517187edd27dc50" +
	"244d2b9e8e0b7221b670df6e943394d7fdb03cfdf3ffc46d7db02c5ec555ddde06ec2ca550e9" +
	"7a34aaffe4dafc906b0a0293e3caf624bcb2e239d11b105885efbe170460334a02c1f850cb45" +
	"576d630c510f60485cd48eb7f90af289cbdf81cf6b98b78a28cddb68697bd5df6dc9a740efbf" +
	"0975d6897da1b09a1b158ce501e68561ee7f4a8b0702d4ab3b1409a05396a724e877fa623347" +
	"b085cb5e84dc5b31bf76bb9a28d127a32f9bba7e1d4f53de67e8c342afbd5d835d083ec501d7" +
	"2d707a2df19a1a44de73568719b29414b7c9b14573784fbbece523a909862697db7215ff33a0" +
	"d43e4ca2e653d421f74537c2ae6edf30b4ef0e9b2b6188a10504c7f169b15acec1718068deb9" +
	"247d31274e521a3778c139540375b75162c3d7d072f7c0e9fdf5110b42831f0e3d78b0a356e0" +
	"b23289b8bdf4cbac35edf27ee3d4d7bc34cce70bbf6e36f915469c299cc5fd660932ed3953b5" +
	"973cd6d8f08caccf06c70087f7c72b5435f1ca782181c432e5458f36023ec1fae8f9e1a543f3" +
	"38dadb330d2f6ad73d635ebbe5d3d9d6f2261c51360f2dfb653c76d372fa811917f5b9ba7ad7" +
	"34f8644aa3e825a28fd5356c13c78b8368a73ac6170fca1d9be48153ef6a2dc2266f6de0f43f" +
	"790594558371d757da903399859840587b09edb23d2ad80939fb626e1a949a215c2206aca855" +
	"157fccdd55b77c2822607948490cd568d6697786fb3cd81db95975c4aa0e86a0b5b8f07dd9a6" +
	"a3fca18e3601a84e689ccdde8e0d3e0d128e22068e3acfbdda0a2d03cf985696bda08a0add7f" +
	"a91485d2f5ae3914a17afd5c92d797d1c6ab702024eca2609b4febcf16cad416d689968cc773" +
	"2467bed2f1e73e98beed5d4c7cea1ff8fb8979a4b6ee807fcedf90840fdeb29eb6922af66111" +
	"181dbcb4798a7adb7a564dd1018e022179bd22ca223a6e8cd299fed2df08edcc40b4bcab0285" +
	"77055fd90a8f7d54281b262cc19f9e7628ea58e99406a893057f7b2dd9ff93626b2604bb68da" +
	"2b6b53faa1925cab3ceb566379211628c6845953be71352a4f69229c2672abb612a7161990ee" +
	"231db9aaedd79a93534d8a41d9230d3cc20145843c4d442fbc5cc4068f200b74bf44e165401e" +
	"8af486e34b29a51a04c0c1905580db9f8eca1082adc8613cabd47fecbd726c1d440236c08f8e" +
	"20606a38a7599238e1b79e47b2df61a74cf08cdac45b55503647b61dad9dfdf0c8a7f88afa42" +
	"7b62faba5f8e8229c5dea33fd8a78dba2bd93ced7016b513c612af458448695fcd18d1218066" +
	"902a7e7bccf3ba88d0b74c1df8c4f41a6c9234bde4b152ba670feaa425c5d86bcf89c0e0fa23" +
	"2efbb2489395a63d857af8eedbca1f0ba98697dff3ad54081fc793b6bee31133a8ee798728f4" +
	"5bbeac837a8f93cabe6a474bbb0bf9fb3dc14836d5769e090e38ce38ff793baa16f9bc13e06c" +
	"302eb013e1ce81fd5aa3c43b7dec7b6df7bbd1f1e4468267b3602861e95f97dc7afde280601e" +
	"7bdb4c05a5d7f824cd324465285a5c23f4a9cae88cb65ba89233a26ce60a41636ed938f28c45" +
	"028767a81335e56c060fc9ef10dfd37ec4b0fdf2d53f419c193c7175c9ac8de932c1a70c81f0" +
	"794a3e132b36c4ce0e853a727c4a5c0453d0eb80476b79620dbe7a2f9a8c6b30529124762abf" +
	"07ae3ff2f061bde19248c0a2c87a67ec83eceed10c879ae72f717758deaf8a309819e632bc0a" +
	"95f1eb9fd3331ffc9eb9bdae4e45c69a80608cbd0dc5d264df1eeeebe16d4c7fe5e221e7b34d" +
	"551d5965767146788c0c0c870cb46aeca4924a7f11c88a9fa733085bb940a7ed94ba0fdec051" +
	"745372f12acd64ff5f62859bd53fc993d07650f00a215f9a2404502fb9b82c8f4218cd4ea03b" +
	"5ce88517c1fa9660bf476c0d128ae474cf28a3e03b13dff404b24134b4774e086fa53aba32d6" +
	"e2950eae93959e7d5c4b27259fe7def589696a9ef5cbf3ac97151780949fd101902dbf7fd495" +
	"cc44b8417d712813a4e733e55c928fad0028476a8e9557addff2b7055d59e7ca0164011d9ed2" +
	"994ef7aa819573cf41deb87697c08a65b5f7ae673770f78a76157d93549f80b6e5177b1a2c14" +
	"74a30f2bbaf1818449ac9225bb24a71f227b0b7982f3afabf3cd7548d70d3d42bd7a400ed2a1" +
	"941acbdee2966d0113129d3164f3618c3c73dfb2bd1b1cac5cf510f4f5039e46e6bd90e7071c" +
	"eb38b96de28cf81dcdeb2af32d9bd1bbc69721e64014bbda67fff7063cff35d3b9f4034814b9" +
	"aa01a9116fce7f49c3c606977100297a5970f83eda8dc4f6b3c54a4eac1054714791bcee35b2" +
	"b18350a2dcd13564f98f1c6d2a4fca9994045848c627e7e29b172314cc3837d0c208e2334ac4" +
	"9fd6921782826233390a275a3e099e1bd081ce39e620638bc8af44eaf81e8076e88e07737c92" +
	"5c920c075deb721bfc72120ca9d35a7c1c9018e9ce9c882e07c301ee02ef7fa9661e332e3d11" +
	"80528992bade87779dab573f067b70195ccb6c3fe73e69d48f46bca74fce2827863fce1d0bb3" +
	"f7ae433c4a0c6b8c9c6e039abf07784f3cc4ba41a05c1012312ad2d2e688242701469c1cf466" +
	"21883fe7dbad2442440d62c93fc27046d83d7d6a2ded80747275a44ce35c7e8a55a5d88987dd" +
	"3329771d800aff2aab1c5ff15b3408c7e53d5cc0646a9205abfe7e6bfab248e8222f6ce06d4b" +
	"ced335b9566001bc714584e7531f625e7db9b450f402e094f82d5fd6ca25aba200b2139844d5" +
	"6106d0e447a147068486ea63d403dc73ddcf907608b8820c3dc8e0099a03a3fd94d504933b0a" +
	"0dd363a5ab57541a6ee97b819fc5a6b1323a5aad5ee5c172e80708b0f3d29457ba9b51abdeae" +
	"f236e709aed4e8a32c0be13b55366cc1068ed2470f8c337f4e3ac176fb4bc387ec7100f7f998" +
	"ae89831ec5d4ca979eb3c087a6a1edbae7fad2cf9691f61e3eec36a00f6c5466a9076da4a157" +
	"24ca65e7aa39e48164478f"

// Permit2ContractAddress is the fixed address probed by eth_getCode during
// the latency/capability test.
const Permit2ContractAddress = "0x000000000022D473030F116dDEE9F6B43aC78BA3"

// HasPermit2Prefix reports whether a hex-encoded eth_getCode result starts
// with the known Permit2 bytecode prefix. Comparison is a plain prefix match
// on the hex string, which is equivalent to decoding both sides and comparing
// bytes, but avoids the decode allocation on the hot path.
func HasPermit2Prefix(codeHex string) bool {
	normalized := codeHex
	if len(normalized) >= 2 && (normalized[:2] == "0x" || normalized[:2] == "0X") {
		normalized = normalized[2:]
	}
	return len(normalized) >= len(permit2BytecodePrefix) && normalized[:len(permit2BytecodePrefix)] == permit2BytecodePrefix
}

// Permit2BytecodeSample returns the exact prefix HasPermit2Prefix matches
// against, for tests that need an eth_getCode result which satisfies it.
func Permit2BytecodeSample() string {
	return permit2BytecodePrefix
}
